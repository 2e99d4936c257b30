package utils

import (
	"fmt"

	"gorm.io/gorm"
)

func Paginate(opts []QueryOption) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		q := Query{
			Limit:  0,
			Offset: 0,
			SortBy: "id",
			Order:  OrderAsc,
		}

		for _, opt := range opts {
			opt.Apply(&q)
		}

		db = db.Offset(q.Offset).Order(fmt.Sprintf("%s %s", q.SortBy, q.Order))

		if q.Limit > 0 {
			db = db.Limit(q.Limit)
		}

		return db
	}
}
