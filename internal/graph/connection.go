package graph

import (
	"fmt"
	"strings"

	"worldforge/internal/entity"
)

type kindPair struct {
	source entity.Kind
	target entity.Kind
}

// connectionTypes is directional: location -> character is not the reverse
// of character -> location and falls back to the generic vocabulary.
var connectionTypes = map[kindPair][]string{
	{entity.KindCharacter, entity.KindCharacter}: {"friend", "enemy", "ally", "rival", "family", "mentor", "student", "romantic"},
	{entity.KindCharacter, entity.KindLocation}:  {"lives_in", "from", "visits", "owns", "works_at"},
	{entity.KindCharacter, entity.KindMagic}:     {"uses", "studies", "masters", "created", "opposes"},
	{entity.KindCharacter, entity.KindTimeline}:  {"participates", "witnesses", "causes", "affected_by"},
	{entity.KindLocation, entity.KindLocation}:   {"contains", "adjacent_to", "connected_to", "part_of"},
	{entity.KindTimeline, entity.KindLocation}:   {"occurs_at", "affects", "originates_from"},
}

var fallbackConnectionTypes = []string{"related_to", "references", "mentions"}

// ConnectionTypes returns the connection types permitted from source to target.
func ConnectionTypes(source, target entity.Kind) []string {
	types, ok := connectionTypes[kindPair{source, target}]
	if !ok {
		types = fallbackConnectionTypes
	}
	out := make([]string, len(types))
	copy(out, types)
	return out
}

// AllowsConnectionType reports whether connectionType is permitted from
// source to target.
func AllowsConnectionType(source, target entity.Kind, connectionType string) bool {
	for _, t := range ConnectionTypes(source, target) {
		if t == connectionType {
			return true
		}
	}
	return false
}

// Connection is a directed, typed edge between two entities.
type Connection struct {
	ID             string     `json:"id,omitempty"`
	Source         entity.Ref `json:"source"`
	Target         entity.Ref `json:"target"`
	TargetName     string     `json:"targetName,omitempty"`
	ConnectionType string     `json:"connectionType"`
	Description    string     `json:"description,omitempty"`
}

// NewConnection builds a connection after checking both kinds and that
// connectionType belongs to the vocabulary of the (source, target) pair.
// The ID is left empty for the store to assign.
func NewConnection(source, target entity.Ref, connectionType, description string) (Connection, error) {
	if !source.Kind.Valid() {
		return Connection{}, &ValidationError{Field: "sourceType", Value: string(source.Kind), Allowed: kindNames()}
	}
	if !target.Kind.Valid() {
		return Connection{}, &ValidationError{Field: "targetType", Value: string(target.Kind), Allowed: kindNames()}
	}
	connectionType = strings.TrimSpace(connectionType)
	if !AllowsConnectionType(source.Kind, target.Kind, connectionType) {
		return Connection{}, &ValidationError{
			Field:   "connectionType",
			Value:   connectionType,
			Allowed: ConnectionTypes(source.Kind, target.Kind),
		}
	}
	return Connection{
		Source:         source,
		Target:         target,
		ConnectionType: connectionType,
		Description:    strings.TrimSpace(description),
	}, nil
}

// AuthorRequest is a user's request to connect an entity to a target.
type AuthorRequest struct {
	Source         entity.Ref
	Target         entity.Ref
	ConnectionType string
	Description    string
}

// Author resolves the request's target among the available entities,
// validates the connection and hands it to add. Nothing is added when
// the target is unknown or the connection type is missing or invalid.
func Author(req AuthorRequest, available []entity.Summary, add func(Connection) error) error {
	var targetName string
	found := false
	for _, s := range available {
		if s.Ref == req.Target {
			targetName = s.Name
			found = true
			break
		}
	}
	if !found {
		return &NotFoundError{Ref: req.Target}
	}
	if strings.TrimSpace(req.ConnectionType) == "" {
		return &ValidationError{
			Field:   "connectionType",
			Allowed: ConnectionTypes(req.Source.Kind, req.Target.Kind),
		}
	}

	conn, err := NewConnection(req.Source, req.Target, req.ConnectionType, req.Description)
	if err != nil {
		return err
	}
	conn.TargetName = targetName
	return add(conn)
}

func kindNames() []string {
	names := make([]string, len(entity.Kinds))
	for i, k := range entity.Kinds {
		names[i] = string(k)
	}
	return names
}

// ValidationError reports a value outside its permitted vocabulary.
type ValidationError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s is required (allowed: %s)", e.Field, strings.Join(e.Allowed, ", "))
	}
	return fmt.Sprintf("invalid %s %q (allowed: %s)", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// NotFoundError reports an entity reference that could not be resolved.
type NotFoundError struct {
	Ref entity.Ref
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("entity %s not found", e.Ref)
}
