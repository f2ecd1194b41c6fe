package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/MKhiriev/webinar-landing/internal/app"
	"github.com/MKhiriev/webinar-landing/internal/logger"
	"github.com/MKhiriev/webinar-landing/internal/utils"
	"github.com/MKhiriev/webinar-landing/models"
)

const maxRegistrationBody = 64 << 10

// httpFormView collects what the controller does to the form and replays it
// to the browser as a models.SubmissionResponse.
type httpFormView struct {
	response models.SubmissionResponse
}

func newHTTPFormView() *httpFormView {
	return &httpFormView{
		response: models.SubmissionResponse{
			Submit: models.SubmitControl{Label: app.MsgSubmitLabel, Enabled: true},
		},
	}
}

func (v *httpFormView) ShowAlert(msg string) {
	v.response.Alerts = append(v.response.Alerts, msg)
}

func (v *httpFormView) CloseModal()         { v.response.CloseModal = true }
func (v *httpFormView) ResetForm()          { v.response.ResetForm = true }
func (v *httpFormView) OpenLink(url string) { v.response.OpenURL = url }

func (v *httpFormView) SubmitControl() models.SubmitControl {
	return v.response.Submit
}

func (v *httpFormView) SetSubmitControl(control models.SubmitControl) {
	v.response.Submit = control
}

func (h *Handler) submitRegistration(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	form, err := decodeRegistrationForm(w, r)
	if err != nil {
		log.Err(err).Msg("invalid registration request")
		http.Error(w, app.MsgInvalidDataProvided, statusFromError(err))
		return
	}

	view := newHTTPFormView()
	status := http.StatusOK
	if err = h.controller.Submit(r.Context(), view, form); err != nil {
		status = statusFromError(err)
	}

	if _, err = utils.WriteJSON(w, view.response, status); err != nil {
		log.Err(err).Msg("failed to write registration response")
	}
}

// decodeRegistrationForm accepts JSON and both HTML form encodings.
func decodeRegistrationForm(w http.ResponseWriter, r *http.Request) (models.RegistrationForm, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRegistrationBody)

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return models.RegistrationForm{}, fmt.Errorf("%w: %w", ErrUnsupportedContentType, err)
	}

	var form models.RegistrationForm
	switch mediaType {
	case "application/json":
		if err = json.NewDecoder(r.Body).Decode(&form); err != nil {
			return models.RegistrationForm{}, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err = r.ParseMultipartForm(maxRegistrationBody); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return models.RegistrationForm{}, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
		form = models.RegistrationForm{
			Name:    r.PostFormValue("name"),
			Email:   r.PostFormValue("email"),
			Phone:   r.PostFormValue("phone"),
			Channel: r.PostFormValue("channel"),
		}
	default:
		return models.RegistrationForm{}, fmt.Errorf("%w: %s", ErrUnsupportedContentType, mediaType)
	}

	return form, nil
}
