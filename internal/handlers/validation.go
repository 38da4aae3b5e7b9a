package handlers

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	domain "github.com/manicurestudiolite-bot/manicurestudiolite/internal/domain/appointment"
)

var registerOnce sync.Once

// RegisterValidators instala as tags customizadas no validador do gin.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("appointment_status", func(fl validator.FieldLevel) bool {
			return domain.Status(fl.Field().String()).IsValid()
		})
	})
}
