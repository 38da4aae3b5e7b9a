package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError é o corpo de toda resposta de erro da API.
type HTTPError struct {
	Message string `json:"error"`
	Code    string `json:"code"`
}

// Abort encerra a request com o código e a mensagem pt-BR correspondente.
func Abort(c *gin.Context, status int, code string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Message: Message(code),
		Code:    code,
	})
}

// StatusOf mapeia o tipo do erro de negócio para o status HTTP.
// Erros fora do catálogo de negócio viram 500.
func StatusOf(err error) int {
	switch KindOf(err) {
	case KindInvalidArgument:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func BadRequest(c *gin.Context, code string)      { Abort(c, http.StatusBadRequest, code) }
func NotFound(c *gin.Context, code string)        { Abort(c, http.StatusNotFound, code) }
func Unauthorized(c *gin.Context, code string)    { Abort(c, http.StatusUnauthorized, code) }
func TooManyRequests(c *gin.Context, code string) { Abort(c, http.StatusTooManyRequests, code) }
