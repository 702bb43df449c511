package profiles

import (
	"github.com/cardlinkhq/cardlink-backend/pkg/enums"
	"github.com/cardlinkhq/cardlink-backend/pkg/pagination"
)

// SearchParams filter the admin profile listing. Text matches full_name,
// username, and email case-insensitively; Status, when valid, restricts to
// that value and is otherwise ignored the way unknown query values are.
type SearchParams struct {
	Text   string
	Status enums.AccountStatus
	Page   pagination.Params
}

func (p SearchParams) statusFilter() (enums.AccountStatus, bool) {
	if p.Status != "" && p.Status.IsValid() {
		return p.Status, true
	}
	return "", false
}
