package postgres

import (
	"strings"

	"storerating/internal/domain/entity"
	"storerating/internal/infra/persistence/model"

	"gorm.io/gorm"
)

func toUserDomain(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Address:      m.Address,
		Role:         entity.Role(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Address:      u.Address,
		Role:         u.Role.String(),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func toStoreDomain(m *model.StoreModel) *entity.Store {
	if m == nil {
		return nil
	}

	return &entity.Store{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Address:   m.Address,
		OwnerID:   m.OwnerID,
		Owner:     toUserDomain(m.Owner),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromStoreDomain(s *entity.Store) *model.StoreModel {
	return &model.StoreModel{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Address:   s.Address,
		OwnerID:   s.OwnerID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toRatingDomain(m *model.RatingModel) *entity.Rating {
	if m == nil {
		return nil
	}

	return &entity.Rating{
		ID:        m.ID,
		UserID:    m.UserID,
		StoreID:   m.StoreID,
		Value:     m.Value,
		User:      toUserDomain(m.User),
		Store:     toStoreDomain(m.Store),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromRatingDomain(r *entity.Rating) *model.RatingModel {
	return &model.RatingModel{
		ID:        r.ID,
		UserID:    r.UserID,
		StoreID:   r.StoreID,
		Value:     r.Value,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// containsPattern builds an ILIKE pattern matching s anywhere, with LIKE wildcards escaped.
func containsPattern(s string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)

	return "%" + escaped + "%"
}

type substringFilter struct {
	column string
	value  string
}

// whereContains adds an ILIKE condition for every filter with a non-blank value.
func whereContains(query *gorm.DB, filters []substringFilter) *gorm.DB {
	for _, f := range filters {
		if value := strings.TrimSpace(f.value); value != "" {
			query = query.Where(f.column+" ILIKE ?", containsPattern(value))
		}
	}

	return query
}

// orderClause resolves a requested sort against the allowed columns. Unknown
// fields fall back to the default column. Ties are broken by id for a stable order.
func orderClause(sort entity.Sort, allowed map[string]string, defaultColumn string) string {
	column, ok := allowed[sort.Field]
	if !ok {
		column = defaultColumn
	}

	direction := "ASC"
	if sort.Desc() {
		direction = "DESC"
	}

	return column + " " + direction + ", id ASC"
}
