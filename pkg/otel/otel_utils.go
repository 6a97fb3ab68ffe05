package otel

import (
	"errors"
	"strconv"

	"github.com/adrianliechti/voicebridge/pkg/tts"

	"go.opentelemetry.io/otel/attribute"
)

type KeyValue = attribute.KeyValue

func String(key string, val string) KeyValue {
	return attribute.String(key, val)
}

func KeyValues(attrs ...[]KeyValue) []KeyValue {
	var result []KeyValue

	for _, a := range attrs {
		result = append(result, a...)
	}

	return result
}

func statusAttr(err error) KeyValue {
	if err == nil {
		return attribute.String("tts.status", "ok")
	}

	var statusErr *tts.StatusError

	if errors.As(err, &statusErr) {
		return attribute.String("tts.status", strconv.Itoa(statusErr.StatusCode))
	}

	return attribute.String("tts.status", "error")
}
