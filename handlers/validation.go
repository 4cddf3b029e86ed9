package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// bindJSON decodes and validates the body. On failure it answers 400 with
// one entry per invalid field and returns false.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	fields := validationFields(err)
	if fields == nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "malformed request body: " + err.Error()})
		return false
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
	return false
}

// validationFields flattens validator errors into field -> rule. Errors
// from the elements of an array body are merged. Nil means err was not a
// validation failure.
func validationFields(err error) map[string]string {
	var sliceErrs binding.SliceValidationError
	if errors.As(err, &sliceErrs) {
		fields := map[string]string{}
		for _, elemErr := range sliceErrs {
			for name, tag := range validationFields(elemErr) {
				fields[name] = tag
			}
		}
		return fields
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[jsonFieldName(fe)] = rule(fe)
	}
	return fields
}

func jsonFieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return fe.Namespace()
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func rule(fe validator.FieldError) string {
	if fe.Param() != "" {
		return fe.Tag() + "=" + fe.Param()
	}
	return fe.Tag()
}
