package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/heightconv/internal/model"
	q "github.com/iliyamo/heightconv/internal/queue"
	"github.com/iliyamo/heightconv/internal/service"
)

const heightTemplate = "height.html"

// HeightHandler serves the height conversion form and its JSON twin.
type HeightHandler struct {
	Publisher service.EventPublisher // receives one event per successful conversion
	Log       logrus.FieldLogger
}

// NewHeightHandler constructs a HeightHandler and panics if any dependency is nil.
func NewHeightHandler(pub service.EventPublisher, log logrus.FieldLogger) *HeightHandler {
	if pub == nil || log == nil {
		panic("nil dependency passed to NewHeightHandler")
	}
	return &HeightHandler{Publisher: pub, Log: log}
}

// heightView is the data handed to the form template.
type heightView struct {
	HeightCm     string
	HeightFeet   string
	HeightInches string
	Error        string
}

// heightResponse is the JSON body of GET /v1/convert.
type heightResponse struct {
	Cm     string `json:"cm"`
	Feet   string `json:"feet"`
	Inches string `json:"inches"`
}

// ShowForm renders an empty form.
func (h *HeightHandler) ShowForm(c echo.Context) error {
	return c.Render(http.StatusOK, heightTemplate, heightView{})
}

// SubmitForm runs the conversion round trip for the posted heightCm field
// and re-renders the form.  Invalid input re-renders with a 400 and the
// raw text so the user can fix it.
func (h *HeightHandler) SubmitForm(c echo.Context) error {
	var form model.HeightForm
	form.SetHeightCm(c.FormValue("heightCm"))

	if err := convert(&form); err != nil {
		var pe *model.ParseError
		if !errors.As(err, &pe) {
			return err
		}
		return c.Render(http.StatusBadRequest, heightTemplate, heightView{
			HeightCm: form.HeightCm(),
			Error:    "Please enter a whole number of centimeters.",
		})
	}

	h.publish(c.Request().Context(), &form, q.SourceForm)
	return c.Render(http.StatusOK, heightTemplate, heightView{
		HeightCm:     form.HeightCm(),
		HeightFeet:   form.HeightFeet(),
		HeightInches: form.HeightInches(),
	})
}

// Convert is the JSON form of the round trip: GET /v1/convert?cm=100.
// It does not publish; wrap it with PublishConverted.
func (h *HeightHandler) Convert(c echo.Context) error {
	var form model.HeightForm
	form.SetHeightCm(c.QueryParam("cm"))

	if err := convert(&form); err != nil {
		var pe *model.ParseError
		if !errors.As(err, &pe) {
			return err
		}
		return jsonError(c, http.StatusBadRequest, "invalid_centimeters", pe.Error())
	}

	return c.JSON(http.StatusOK, heightResponse{
		Cm:     form.HeightCm(),
		Feet:   form.HeightFeet(),
		Inches: form.HeightInches(),
	})
}

// PublishConverted publishes an API conversion event after every 200 from
// next.  It sits outside the response cache so hits are published too.
func (h *HeightHandler) PublishConverted(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := next(c); err != nil {
			return err
		}
		if c.Response().Status != http.StatusOK {
			return nil
		}
		var form model.HeightForm
		form.SetHeightCm(c.QueryParam("cm"))
		if err := convert(&form); err != nil {
			return nil
		}
		h.publish(c.Request().Context(), &form, q.SourceAPI)
		return nil
	}
}

// convert computes feet then inches, stopping at the first failure.
func convert(form *model.HeightForm) error {
	if err := form.ComputeFeet(); err != nil {
		return err
	}
	return form.ComputeInches()
}

func (h *HeightHandler) publish(ctx context.Context, form *model.HeightForm, source string) {
	ev := q.NewConversionEvent(form.HeightCm(), form.HeightFeet(), form.HeightInches(), source)
	if err := h.Publisher.PublishConversion(ctx, ev); err != nil {
		h.Log.WithError(err).WithField("event_id", ev.ID).Warn("conversion event not published")
	}
}
