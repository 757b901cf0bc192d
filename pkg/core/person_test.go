package core

import "testing"

func TestPersonGreet(t *testing.T) {
	tests := []struct {
		name string
		age  int
		want string
	}{
		{
			name: "Alice",
			age:  25,
			want: "Hello, my name is Alice and I'm 25 years old.",
		},
		{
			name: "Bob",
			age:  10,
			want: "Hello, my name is Bob and I'm 10 years old.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPerson(tt.name, tt.age)
			if got := p.Greet(); got != tt.want {
				t.Errorf("Greet() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPersonIsAdult(t *testing.T) {
	tests := []struct {
		name string
		age  int
		want bool
	}{
		{name: "Adult", age: 25, want: true},
		{name: "Child", age: 10, want: false},
		{name: "Boundary", age: 18, want: true},
		{name: "Just Under", age: 17, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPerson("Alice", tt.age)
			if got := p.IsAdult(); got != tt.want {
				t.Errorf("IsAdult() with age %d = %v, want %v", tt.age, got, tt.want)
			}
		})
	}
}
