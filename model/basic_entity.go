package model

type BasicEntity struct {
	entityErrors []error
	ID           *int `json:"id,omitempty"`
}

func (b *BasicEntity) IsValid() bool {
	return len(b.entityErrors) == 0
}

func (b *BasicEntity) AddError(err error) {
	b.entityErrors = append(b.entityErrors, err)
}

func (b *BasicEntity) GetID() *int {
	return b.ID
}

//SetID overwrites the current identifier. Passing nil clears it
func (b *BasicEntity) SetID(id *int) {
	b.ID = id
}

//IsNew is true until the entity is assigned an identifier
func (b *BasicEntity) IsNew() bool {
	return b.ID == nil
}

func (b *BasicEntity) GetErrors() []error {
	return b.entityErrors
}
