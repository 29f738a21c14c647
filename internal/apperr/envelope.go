package apperr

import "errors"

// Envelope is the uniform {code, msg, data} response body.
type Envelope struct {
	Code Code   `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

func OK(data any) Envelope {
	return Envelope{Code: CodeSuccess, Msg: CodeSuccess.Message(), Data: data}
}

// FromError renders err as a failure envelope. Errors outside the taxonomy
// become INTERNAL_SERVER_ERROR and their details are dropped.
func FromError(err error) Envelope {
	code := CodeOf(err)
	if code == CodeSuccess {
		return OK(nil)
	}

	env := Envelope{Code: code, Msg: code.Message()}

	var e *Error
	if errors.As(err, &e) && e.Data != nil {
		env.Data = e.Data
	}

	return env
}

// Err converts a failure envelope back into an error. It returns nil for
// success envelopes.
func (e Envelope) Err() error {
	if e.Code == CodeSuccess {
		return nil
	}

	msg := e.Msg
	if msg == "" {
		msg = e.Code.Message()
	}

	return &Error{Code: e.Code, Msg: msg, Data: e.Data}
}
