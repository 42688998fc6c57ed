// Package response writes the JSON envelope every endpoint shares:
// {"success": true, "data": ...} on success, {"success": false,
// "error": {"code", "message"}} on failure.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes a failure envelope. code is the stable machine-readable
// identifier clients branch on, such as BOOKING_CONFLICT; message is for
// humans.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ErrorWithDetails is Error with an extra payload, used for field-level
// validation output.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
