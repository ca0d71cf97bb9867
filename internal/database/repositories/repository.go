package repositories

// Repository is the contract every entity store implementation fulfills.
// TX is the transaction handle type - *gorm.DB in production, anything in
// tests.
type Repository[ID comparable, T any, TX any] interface {
	Create(tx TX, t *T) error
	Save(tx TX, t *T) error
	Read(id ID) (T, error)
	Delete(tx TX, id ID) error
	Transaction(f func(tx TX) error) error
}
