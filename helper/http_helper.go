package helper

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	validator "gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

// HTTPHelper carries the request validator and the translator used to
// render its messages.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewHTTPHelper() *HTTPHelper {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(err)
	}

	return &HTTPHelper{Validate: validate, Translator: translator}
}

func (u *HTTPHelper) getTypeData(i interface{}) string {
	v := reflect.ValueOf(i)
	v = reflect.Indirect(v)

	return v.Type().String()
}

// GetStatusCode maps domain error types to HTTP status codes.
func (u *HTTPHelper) GetStatusCode(err error) int {
	switch u.getTypeData(err) {
	case "models.ErrorBadRequest":
		return http.StatusBadRequest
	case "models.ErrorForbidden":
		return http.StatusForbidden
	case "models.ErrorNotFound":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// SendError renders a domain error with its mapped status code.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	c.JSON(u.GetStatusCode(err), gin.H{"error": err.Error()})
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": message})
}

// SendValidationError reports missing required fields, keyed by their
// snake_case JSON names.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	fields := map[string][]string{}
	translations := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		fields[errKey] = append(fields[errKey], translations[err.Namespace()])
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"error":  "Invalid data",
		"fields": fields,
	})
}

// ValidateRequest runs presence validation on a decoded request body and
// reports failures to the client. It returns false when the request was
// rejected.
func (u *HTTPHelper) ValidateRequest(c *gin.Context, req interface{}) bool {
	if err := u.Validate.Struct(req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			u.SendValidationError(c, validationErrors)
		} else {
			u.SendBadRequest(c)
		}
		return false
	}

	return true
}
