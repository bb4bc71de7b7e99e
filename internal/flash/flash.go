// Package flash carries one-time messages across a redirect in the session.
package flash

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type Message struct {
	Type string // "success", "error", "warning", "info"
	Text string
}

func init() {
	// the cookie store gob-encodes session values
	gob.Register(Message{})
}

func Success(c *gin.Context, text string) { set(c, "success", text) }
func Error(c *gin.Context, text string)   { set(c, "error", text) }
func Warning(c *gin.Context, text string) { set(c, "warning", text) }
func Info(c *gin.Context, text string)    { set(c, "info", text) }

func set(c *gin.Context, typ, text string) {
	sess := sessions.Default(c)
	sess.AddFlash(Message{Type: typ, Text: text})
	_ = sess.Save()
}

// Pop removes and returns the pending message, or nil. Saving after the
// read is what consumes it.
func Pop(c *gin.Context) *Message {
	sess := sessions.Default(c)
	flashes := sess.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	_ = sess.Save()
	if msg, ok := flashes[len(flashes)-1].(Message); ok {
		return &msg
	}
	return nil
}
