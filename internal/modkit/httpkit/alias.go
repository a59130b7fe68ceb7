// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	perr "lostfound/internal/platform/errors"
	phttp "lostfound/internal/platform/net/http"
	"lostfound/internal/platform/net/http/bind"

	"github.com/google/uuid"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Created returns a 201 response
func Created(data any) Response { return phttp.Created(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// URLParam returns the named path parameter
func URLParam(r *http.Request, key string) string { return phttp.URLParam(r, key) }

// UUIDParam parses the named path parameter as a uuid; a bad value is InvalidArgument on that field
func UUIDParam(r *http.Request, key string) (uuid.UUID, error) {
	id, err := uuid.Parse(phttp.URLParam(r, key))
	if err != nil {
		return uuid.Nil, perr.WithField(perr.InvalidArgf("%s must be a uuid", key), key)
	}
	return id, nil
}

// JSON binds and validates T then calls fn. A returned Response passes through untouched,
// any other value is wrapped as 200
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return phttp.Error(err)
		}
		return wrap(fn(r, in))
	})
}

// Call adapts a handler that takes no JSON body
func Call(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		return wrap(fn(r))
	})
}

// Handle lets you directly adapt a Response-returning function if you prefer
func Handle(fn func(*http.Request) Response) Handler {
	return phttp.Handle(fn)
}

func wrap(out any, err error) Response {
	if err != nil {
		return phttp.Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return phttp.OK(out)
}
