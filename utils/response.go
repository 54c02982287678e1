package utils

import "github.com/gin-gonic/gin"

// FieldIssue pinpoints a single schema violation in a request body.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body. Issues is populated only for
// validation failures.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Issues []FieldIssue `json:"issues,omitempty"`
}

// Error writes a standard error response.
func Error(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, ErrorResponse{Error: message})
}

// ValidationFailed writes a 400 response listing every violated field.
func ValidationFailed(ctx *gin.Context, message string, issues []FieldIssue) {
	ctx.JSON(400, ErrorResponse{Error: message, Issues: issues})
}
