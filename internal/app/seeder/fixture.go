package seeder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/usergraph-backend/internal/domain"
)

// Fixture is a set of users to seed. Friends reference other users by name.
//
//	users:
//	  - name: Alice
//	    friends: [Bob]
//	  - name: Bob
type Fixture struct {
	Users []FixtureUser `yaml:"users"`
}

// FixtureUser is one user in a fixture.
type FixtureUser struct {
	Name    string   `yaml:"name"`
	Friends []string `yaml:"friends"`
}

// LoadFixture reads and validates the fixture file at path.
func LoadFixture(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	fx, err := ParseFixture(f)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	return fx, nil
}

// ParseFixture decodes a YAML fixture and validates it. Unknown keys are
// rejected.
func ParseFixture(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fx Fixture
	if err := dec.Decode(&fx); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if err := fx.Validate(); err != nil {
		return nil, err
	}
	return &fx, nil
}

// Validate checks that names are present, unique and no longer than the API
// accepts, and that every friend reference resolves to a user in the fixture.
func (fx *Fixture) Validate() error {
	known := make(map[string]bool, len(fx.Users))
	for i, u := range fx.Users {
		name := strings.TrimSpace(u.Name)
		if name == "" {
			return fmt.Errorf("users[%d]: name is required", i)
		}
		if n := utf8.RuneCountInString(name); n > domain.MaxNameLength {
			return fmt.Errorf("users[%d]: name is %d characters, at most %d allowed", i, n, domain.MaxNameLength)
		}
		if known[name] {
			return fmt.Errorf("users[%d]: duplicate name %q", i, name)
		}
		known[name] = true
	}

	var unknown []string
	for _, u := range fx.Users {
		for _, friend := range u.Friends {
			if !known[strings.TrimSpace(friend)] {
				unknown = append(unknown, fmt.Sprintf("%s -> %s", u.Name, friend))
			}
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown friend names: %s", strings.Join(unknown, ", "))
	}

	return nil
}
