package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Context carries the gin context plus the request-scoped context.Context
// handed to repositories. Param and query parsing accumulate their errors so
// controllers can pull several values and validate once.
type Context struct {
	*gin.Context
	Ctx context.Context

	paramErrs []error
	queryErrs []error
}

// BindFunc binds the JSON body into v and checks that the named struct
// fields were actually provided (non-zero pointer or non-empty value).
func (c *Context) BindFunc(v interface{}, requiredFields ...string) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return NewRequestError(errors.Wrap(err, "parsing request body"), http.StatusBadRequest)
	}

	rv := reflect.ValueOf(v).Elem()
	for _, name := range requiredFields {
		field := rv.FieldByName(name)
		if !field.IsValid() {
			continue
		}
		if field.Kind() == reflect.Ptr && field.IsNil() {
			return NewRequestError(fmt.Errorf("field %s is required", name), http.StatusBadRequest)
		}
		if field.Kind() != reflect.Ptr && field.IsZero() {
			return NewRequestError(fmt.Errorf("field %s is required", name), http.StatusBadRequest)
		}
	}

	return nil
}

// GetParam parses a path parameter into the requested kind. Errors are
// collected and surfaced by ValidParam.
func (c *Context) GetParam(kind reflect.Kind, key string) interface{} {
	value := c.Param(key)

	switch kind {
	case reflect.Int:
		n, err := strconv.Atoi(strings.TrimPrefix(value, "/"))
		if err != nil {
			c.paramErrs = append(c.paramErrs, fmt.Errorf("param %s must be an integer", key))
			return 0
		}
		return n
	case reflect.String:
		return strings.TrimPrefix(value, "/")
	default:
		c.paramErrs = append(c.paramErrs, fmt.Errorf("unsupported param kind for %s", key))
		return nil
	}
}

// GetQueryFunc parses an optional query parameter into a pointer of the
// requested kind. Absent parameters come back as typed nil pointers.
func (c *Context) GetQueryFunc(kind reflect.Kind, key string) interface{} {
	value, ok := c.GetQuery(key)

	switch kind {
	case reflect.Int:
		if !ok {
			return (*int)(nil)
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, fmt.Errorf("query %s must be an integer", key))
			return (*int)(nil)
		}
		return &n
	case reflect.Bool:
		if !ok {
			return (*bool)(nil)
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, fmt.Errorf("query %s must be a boolean", key))
			return (*bool)(nil)
		}
		return &b
	case reflect.String:
		if !ok {
			return (*string)(nil)
		}
		return &value
	default:
		c.queryErrs = append(c.queryErrs, fmt.Errorf("unsupported query kind for %s", key))
		return nil
	}
}

// ValidParam reports the first path-parameter parsing failure.
func (c *Context) ValidParam() error {
	if len(c.paramErrs) > 0 {
		return NewRequestError(c.paramErrs[0], http.StatusBadRequest)
	}

	return nil
}

// ValidQuery reports the first query-parameter parsing failure.
func (c *Context) ValidQuery() error {
	if len(c.queryErrs) > 0 {
		return NewRequestError(c.queryErrs[0], http.StatusBadRequest)
	}

	return nil
}

// Respond writes data as the JSON body with the given status.
func (c *Context) Respond(data interface{}, status int) error {
	c.JSON(status, data)
	return nil
}

// RespondText writes a plain-text body with the given status.
func (c *Context) RespondText(message string, status int) error {
	c.String(status, message)
	return nil
}

// RespondError writes the error as a plain-text body. Request errors keep
// their status and message; anything else is logged and reported as a
// generic 500 so driver internals never reach the client.
func (c *Context) RespondError(err error) error {
	if webErr, ok := IsRequestError(err); ok {
		c.String(webErr.Status, webErr.Err.Error())
		return nil
	}

	log.Printf("ERROR: %+v", err)
	c.String(http.StatusInternalServerError, "Internal server error")

	return nil
}
