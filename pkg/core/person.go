package core

import "fmt"

// Person is the record used by the basics lessons.
// It is constructed once and never mutated.
type Person struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// NewPerson creates a Person with the given name and age.
func NewPerson(name string, age int) Person {
	return Person{Name: name, Age: age}
}

// Greet returns the fixed-format introduction sentence.
func (p Person) Greet() string {
	return fmt.Sprintf("Hello, my name is %s and I'm %d years old.", p.Name, p.Age)
}

// IsAdult reports whether the person is at least 18 years old.
func (p Person) IsAdult() bool {
	return p.Age >= 18
}
