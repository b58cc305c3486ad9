package value

import (
	"github.com/rs/xid"

	"robux_topup/internal/domain"
	"robux_topup/pkg/errcodes"
)

type SessionID string

func NewSessionID() SessionID {
	return SessionID(xid.New().String())
}

func ParseSessionID(s string) (SessionID, error) {
	id, err := xid.FromString(s)
	if err != nil {
		return "", domain.WrapError(err, errcodes.InvalidSessionID, "invalid session id")
	}

	return SessionID(id.String()), nil
}

func (id SessionID) String() string {
	return string(id)
}
