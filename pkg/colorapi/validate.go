package colorapi

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/csscolor/pkg/csscolor"
)

// ValidateRequest selects a rule and/or overrides and lists the values to
// check. Values may be strings, numbers, booleans or null.
type ValidateRequest struct {
	Values      []any    `json:"values"`
	Rule        string   `json:"rule,omitempty"`
	Mode        string   `json:"mode,omitempty"`
	Message     string   `json:"message,omitempty"`
	Normalizers []string `json:"normalizers,omitempty"`
}

type ValidateResponse struct {
	Valid   bool          `json:"valid"`
	Invalid int           `json:"invalid"`
	Results []ValueResult `json:"results"`
}

// ValueResult is the outcome for one value. Mode is empty when the value was
// skipped as empty.
type ValueResult struct {
	Value      any               `json:"value"`
	Valid      bool              `json:"valid"`
	Mode       csscolor.Mode     `json:"mode,omitempty"`
	Message    string            `json:"message,omitempty"`
	Code       string            `json:"code,omitempty"`
	Parameters map[string]string `json:"parameters,omitempty"`
}

func (a *API) validate(r *http.Request) (any, error) {
	var req ValidateRequest
	if err := bindJSON(r, &req); err != nil {
		return nil, err
	}
	if len(req.Values) == 0 {
		return nil, fmt.Errorf("%w: \"values\" must not be empty", csscolor.ErrInvalidArgument)
	}

	c, err := a.rules.Select(req.Rule, csscolor.Overrides{
		Mode:        req.Mode,
		Message:     req.Message,
		Normalizers: req.Normalizers,
	})
	if err != nil {
		return nil, err
	}

	resp := ValidateResponse{Results: make([]ValueResult, 0, len(req.Values))}
	for i, value := range req.Values {
		res, err := a.validator.Validate(value, c)
		if err != nil {
			return nil, fmt.Errorf("values[%d]: %w", i, err)
		}

		vr := ValueResult{Value: value, Valid: res.Valid(), Mode: res.Mode}
		if v := res.Violation; v != nil {
			vr.Message = v.Message
			vr.Code = v.Code
			vr.Parameters = v.Parameters
			resp.Invalid++
		}
		resp.Results = append(resp.Results, vr)
	}
	resp.Valid = resp.Invalid == 0
	return resp, nil
}
