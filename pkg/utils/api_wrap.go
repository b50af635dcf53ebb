package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	MsgLocationNotFound = "Sorry, we don't have a cafe at that location."
	MsgCafeNotFound     = "Sorry a cafe with that id was not found in the database"
	MsgEmptyCollection  = "Sorry, there are no cafes in the database."
	MsgForbidden        = "You are not authorized to access this route"
	MsgInvalidCafe      = "Sorry, name, map_url, img_url, location and seats are required."
	MsgDuplicateCafe    = "Sorry, a cafe with that name already exists."
	MsgInternalError    = "Something went wrong, please try again later."
)

// RespondData writes a 200 body of the form {key: data}.
func RespondData(c *gin.Context, key string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{key: data})
}

// RespondSuccess writes {"response": {"success": message}}.
func RespondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"response": gin.H{"success": message},
	})
}

// RespondError writes {"error": {<status text>: message}} with the given code.
func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"error": gin.H{http.StatusText(code): message},
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrLocationNotFound):
		RespondError(c, http.StatusNotFound, MsgLocationNotFound)
	case errors.Is(err, ErrCafeNotFound):
		RespondError(c, http.StatusNotFound, MsgCafeNotFound)
	case errors.Is(err, ErrEmptyCollection):
		RespondError(c, http.StatusNotFound, MsgEmptyCollection)
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, MsgForbidden)
	case errors.Is(err, ErrInvalidCafe):
		RespondError(c, http.StatusBadRequest, MsgInvalidCafe)
	case errors.Is(err, ErrDuplicateCafe):
		RespondError(c, http.StatusConflict, MsgDuplicateCafe)
	case errors.Is(err, ErrDatabaseError):
		log.Printf("[%s] Database error: %v", c.GetString("trace_id"), err)
		RespondError(c, http.StatusInternalServerError, MsgInternalError)
	default:
		log.Printf("[%s] Unknown error: %v", c.GetString("trace_id"), err)
		RespondError(c, http.StatusInternalServerError, MsgInternalError)
	}
}
