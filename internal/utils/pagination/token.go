package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
)

const tokenPrefix = "after:"

// DefaultPageSize applies when a listing asks for no particular limit.
const DefaultPageSize = 100

// PageSize returns limit, or DefaultPageSize when limit is not positive.
func PageSize(limit int) int {
	if limit <= 0 {
		return DefaultPageSize
	}
	return limit
}

// EncodeToken creates an opaque token pointing past the given journal id.
func EncodeToken(lastJournalID int64) string {
	return base64.URLEncoding.EncodeToString([]byte(tokenPrefix + strconv.FormatInt(lastJournalID, 10)))
}

// DecodeToken parses a token produced by EncodeToken. An empty token means
// "from the beginning" and decodes to 0.
func DecodeToken(token string) (int64, error) {
	if token == "" {
		return 0, nil
	}
	decoded, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid pagination token format (base64 decode): %w", apperrors.ErrValidation, err)
	}
	raw, ok := strings.CutPrefix(string(decoded), tokenPrefix)
	if !ok {
		return 0, fmt.Errorf("%w: invalid pagination token format (prefix)", apperrors.ErrValidation)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%w: invalid pagination token format (journal id)", apperrors.ErrValidation)
	}
	return id, nil
}
