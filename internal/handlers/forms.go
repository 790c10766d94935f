package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// parseID — числовой ID из path-параметра.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// formInt — целое из формы; при пустом/кривом значении возвращает def.
func formInt(c *gin.Context, name string, def int) int {
	raw := strings.TrimSpace(c.PostForm(name))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// formRating — шкала 1–5 из формы.
func formRating(c *gin.Context, name string) int {
	v := formInt(c, name, 1)
	if v < 1 {
		v = 1
	}
	if v > 5 {
		v = 5
	}
	return v
}

// formDate — дата из формы в формате YYYY-MM-DD; пустое поле — nil.
func formDate(c *gin.Context, name string) *time.Time {
	raw := strings.TrimSpace(c.PostForm(name))
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}

// formBool — чекбокс из формы.
func formBool(c *gin.Context, name string) bool {
	v := c.PostForm(name)
	return v == "on" || v == "true" || v == "1"
}
