package api

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"

	"github.com/satriapw/tolldash/internal/pkg/constants"
)

// Binder wraps echo's default binder and turns bind failures into 400s the
// central error handler understands.
type Binder struct {
	fallback echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i any, c echo.Context) error {
	if err := b.fallback.Bind(i, c); err != nil {
		return constants.NewCodedError(err.Error(), http.StatusBadRequest)
	}
	return nil
}

// sonicSerializer swaps echo's JSON codec for sonic.
type sonicSerializer struct{}

func (sonicSerializer) Serialize(c echo.Context, i any, indent string) error {
	enc := sonic.ConfigDefault.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (sonicSerializer) Deserialize(c echo.Context, i any) error {
	return sonic.ConfigDefault.NewDecoder(c.Request().Body).Decode(i)
}
