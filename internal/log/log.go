// Package log emits structured JSON action logs enriched with request
// context. Levels: info for normal flow, audit for state changes, warn for
// security-relevant events, error for failures.
package log

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

func init() {
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)
}

func fromCtx(c *fiber.Ctx, action string, fields map[string]any) *logrus.Entry {
	f := logrus.Fields{"action": action}
	for k, v := range fields {
		f[k] = v
	}
	if c != nil {
		f["ip"] = c.IP()
		f["method"] = c.Method()
		f["path"] = c.Path()
		f["status"] = c.Response().StatusCode()
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			f["req_id"] = rid
		}
	}
	return logger.WithFields(f)
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	fromCtx(c, action, fields).Info("ok")
}

func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	fromCtx(c, action, fields).WithField("audit", true).Info("audit")
}

func Security(c *fiber.Ctx, action string, fields map[string]any) {
	fromCtx(c, action, fields).Warn("security")
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	fromCtx(c, action, fields).WithError(err).Error("fail")
}
