package domain

import (
	"fmt"
	"strings"
)

type SessionStatus string

const (
	SessionOpen   SessionStatus = "OPEN"
	SessionClosed SessionStatus = "CLOSED"
)

// statusAliases maps the free-form status strings accepted on input to the
// canonical two-state enum. The legacy data set used unconstrained
// Portuguese labels, so those are honored alongside the enum values.
var statusAliases = map[string]SessionStatus{
	"open":         SessionOpen,
	"em andamento": SessionOpen,
	"closed":       SessionClosed,
	"concluido":    SessionClosed,
	"concluído":    SessionClosed,
	"finalizado":   SessionClosed,
}

// ParseSessionStatus normalizes a caller-supplied status string to the
// closed enum.
func ParseSessionStatus(s string) (SessionStatus, error) {
	status, ok := statusAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: unrecognized status %q", ErrValidation, s)
	}
	return status, nil
}

// Label returns the human-facing presentation of the status. The label is
// display-only; stored state is always the enum value.
func (s SessionStatus) Label() string {
	switch s {
	case SessionOpen:
		return "Em Andamento"
	case SessionClosed:
		return "Concluído"
	default:
		return string(s)
	}
}
