package sink

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/keen-log/src/internal/errors"
)

const (
	startTag = "{{"
	endTag   = "}}"

	// LineTag is the placeholder replaced by the rendered line.
	LineTag = "line"
)

// RequestTemplate is the caller-supplied part of a webhook request.
type RequestTemplate struct {
	Method string      `json:"method"`
	URL    string      `json:"url"`
	Header http.Header `json:"headers,omitempty"`
}

// Clone returns a copy that shares no header storage with r.
func (r RequestTemplate) Clone() RequestTemplate {
	r.Header = r.Header.Clone()
	return r
}

// NewRequest builds the outgoing request carrying body.
func (r RequestTemplate) NewRequest(body string) (*http.Request, error) {
	method := r.Method
	if method == "" {
		method = http.MethodPost
	}
	req, err := http.NewRequest(method, r.URL, strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	for key, values := range r.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	return req, nil
}

// Webhook is an HTTP target bound to a body template.
type Webhook struct {
	Request    RequestTemplate `json:"request"`
	Format     string          `json:"format"`
	EscapeJSON bool            `json:"escape_json,omitempty"`
}

// NewWebhook validates format and returns the descriptor.
func NewWebhook(req RequestTemplate, format string, escapeJSON bool) (Webhook, error) {
	if n := CountPlaceholders(format); n != 1 {
		return Webhook{}, errors.NewValidationError(
			fmt.Sprintf("webhook format must contain exactly one {{%s}} placeholder, found %d", LineTag, n), nil)
	}
	if req.URL == "" {
		return Webhook{}, errors.NewValidationError("webhook URL is required", nil)
	}
	return Webhook{Request: req.Clone(), Format: format, EscapeJSON: escapeJSON}, nil
}

// Clone returns a deep copy of w.
func (w Webhook) Clone() Webhook {
	w.Request = w.Request.Clone()
	return w
}

// CountPlaceholders returns how many {{line}} placeholders format contains.
func CountPlaceholders(format string) int {
	count := 0
	fasttemplate.ExecuteFuncString(format, startTag, endTag, func(out io.Writer, tag string) (int, error) {
		if strings.TrimSpace(tag) == LineTag {
			count++
			return 0, nil
		}
		return out.Write([]byte(startTag + tag + endTag))
	})
	return count
}

// Render substitutes line into the format. Unknown tags are kept verbatim.
func (w Webhook) Render(line string) string {
	value := line
	if w.EscapeJSON {
		value = escapeJSON(line)
	}
	return fasttemplate.ExecuteFuncString(w.Format, startTag, endTag, func(out io.Writer, tag string) (int, error) {
		if strings.TrimSpace(tag) == LineTag {
			return io.WriteString(out, value)
		}
		return io.WriteString(out, startTag+tag+endTag)
	})
}

// Deliver renders line into the body and sends one request.
func (w Webhook) Deliver(sender Sender, line string) error {
	req, err := w.Request.NewRequest(w.Render(line))
	if err != nil {
		return errors.NewSinkRequestError(fmt.Sprintf("couldn't build request for %s", w.Request.URL), err)
	}
	if err := sender.Send(req); err != nil {
		return errors.NewSinkRequestError(fmt.Sprintf("request to %s failed", w.Request.URL), err)
	}
	return nil
}

// escapeJSON returns s encoded as the inside of a JSON string literal.
func escapeJSON(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return s
	}
	encoded := strings.TrimSuffix(buf.String(), "\n")
	return encoded[1 : len(encoded)-1]
}
