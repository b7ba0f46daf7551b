package model

import "strings"

//NamedEntity is an identified entity with a human readable name
type NamedEntity struct {
	BasicEntity
	Name string `json:"name,omitempty"`
}

func (n *NamedEntity) GetName() string {
	return n.Name
}

func (n *NamedEntity) SetName(name string) {
	n.Name = name
}

func (n *NamedEntity) String() string {
	return n.Name
}

//Person is a named entity split into given and family name
type Person struct {
	BasicEntity
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

func (p *Person) GetFirstName() string {
	return p.FirstName
}

func (p *Person) SetFirstName(name string) {
	p.FirstName = name
}

func (p *Person) GetLastName() string {
	return p.LastName
}

func (p *Person) SetLastName(name string) {
	p.LastName = name
}

func (p *Person) String() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
