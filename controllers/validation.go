package controllers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/realme-social/realme-backend/middleware"
	"github.com/realme-social/realme-backend/utils"
)

func init() {
	// Report violations under the json field name clients actually sent.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	}
}

// bindingIssues turns a ShouldBindJSON error into a per-field issues list.
// Validation stops nothing early: every violated field is reported.
func bindingIssues(err error) []utils.FieldIssue {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []utils.FieldIssue{{Field: "body", Message: "invalid JSON payload"}}
	}

	issues := make([]utils.FieldIssue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, utils.FieldIssue{Field: fe.Field(), Message: issueMessage(fe)})
	}
	return issues
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return "must not be empty"
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "uuid":
		return "must be a valid uuid"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "datetime":
		return "must be a valid YYYY-MM-DD date"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// currentUserID fetches the authenticated identity placed in the context by
// the auth middleware.
func currentUserID(ctx *gin.Context) (uuid.UUID, bool) {
	value, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}
