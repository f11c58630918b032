package entity

import (
	"encoding/json"
	"fmt"
	"time"
)

// Stored field names shared by every backend and by the JSON API.
const (
	GameFieldID        = "id"
	GameFieldTitle     = "title"
	GameFieldCategory  = "category"
	GameFieldThumbnail = "thumbnail"
	GameFieldCreatedAt = "createdAt"
)

// Game is a listed game. Besides the known fields a game carries arbitrary
// additional fields supplied by the client, kept in Extra.
type Game struct {
	ID        string
	Title     string
	Category  string
	Thumbnail string
	CreatedAt time.Time
	Extra     map[string]interface{}
}

// NewGameFromFields builds a game from a free-form request body. Identifier
// keys are dropped; the store assigns them.
func NewGameFromFields(fields map[string]interface{}) *Game {
	game := &Game{Extra: map[string]interface{}{}}
	for key, value := range fields {
		switch key {
		case GameFieldID, "_id":
		case GameFieldTitle:
			game.Title = asString(value)
		case GameFieldCategory:
			game.Category = asString(value)
		case GameFieldThumbnail:
			game.Thumbnail = asString(value)
		case GameFieldCreatedAt:
			game.CreatedAt = asTime(value)
		default:
			game.Extra[key] = value
		}
	}
	return game
}

// GameFromDocument rebuilds a game from a stored document.
func GameFromDocument(id string, doc map[string]interface{}) *Game {
	game := NewGameFromFields(doc)
	game.ID = id
	return game
}

// Fields returns the storable representation of the game, without its id.
func (g *Game) Fields() map[string]interface{} {
	fields := make(map[string]interface{}, len(g.Extra)+4)
	for key, value := range g.Extra {
		fields[key] = value
	}
	fields[GameFieldTitle] = g.Title
	if g.Category != "" {
		fields[GameFieldCategory] = g.Category
	}
	if g.Thumbnail != "" {
		fields[GameFieldThumbnail] = g.Thumbnail
	}
	if !g.CreatedAt.IsZero() {
		fields[GameFieldCreatedAt] = g.CreatedAt
	}
	return fields
}

func (g Game) MarshalJSON() ([]byte, error) {
	fields := g.Fields()
	fields[GameFieldID] = g.ID
	return json.Marshal(fields)
}

func (g *Game) UnmarshalJSON(data []byte) error {
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	id := asString(fields[GameFieldID])
	*g = *NewGameFromFields(fields)
	g.ID = id
	return nil
}

// NormalizeGameUpdate prepares a partial update: identifiers are removed and
// a textual createdAt is stored as a timestamp so ordering keeps working.
func NormalizeGameUpdate(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		switch key {
		case GameFieldID, "_id":
			continue
		case GameFieldCreatedAt:
			if t := asTime(value); !t.IsZero() {
				value = t
			}
		}
		out[key] = value
	}
	return out
}

func asString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func asTime(value interface{}) time.Time {
	t, _ := ParseGameTime(value)
	return t
}

// ParseGameTime reads a stored or client-supplied timestamp. Text must be
// RFC 3339.
func ParseGameTime(value interface{}) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v != nil {
			return *v, true
		}
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
