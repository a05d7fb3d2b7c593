package entity

// Character is a person or being in the story.
type Character struct {
	ID          int    `json:"id"`
	ProjectID   int    `json:"projectId"`
	Name        string `json:"name"`
	Role        string `json:"role,omitempty"`
	Description string `json:"description,omitempty"`
	Backstory   string `json:"backstory,omitempty"`
	Personality string `json:"personality,omitempty"`
}

func (c Character) Ref() Ref                   { return Ref{Kind: KindCharacter, ID: c.ID} }
func (c Character) DisplayTitle() string       { return c.Name }
func (c Character) DisplayCategory() string    { return c.Role }
func (c Character) DisplayDescription() string { return c.Description }

func (c Character) SearchFields() []Field {
	return []Field{
		{Name: "name", Value: c.Name},
		{Name: "description", Value: c.Description},
		{Name: "role", Value: c.Role},
		{Name: "backstory", Value: c.Backstory},
	}
}

// Location is a place in the world.
type Location struct {
	ID          int    `json:"id"`
	ProjectID   int    `json:"projectId"`
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Geography   string `json:"geography,omitempty"`
	Culture     string `json:"culture,omitempty"`
}

func (l Location) Ref() Ref                   { return Ref{Kind: KindLocation, ID: l.ID} }
func (l Location) DisplayTitle() string       { return l.Name }
func (l Location) DisplayCategory() string    { return l.Type }
func (l Location) DisplayDescription() string { return l.Description }

func (l Location) SearchFields() []Field {
	return []Field{
		{Name: "name", Value: l.Name},
		{Name: "description", Value: l.Description},
		{Name: "geography", Value: l.Geography},
		{Name: "culture", Value: l.Culture},
	}
}

// TimelineEvent is a dated event. Location and Characters hold display
// names, not references.
type TimelineEvent struct {
	ID           int      `json:"id"`
	ProjectID    int      `json:"projectId"`
	Title        string   `json:"title"`
	Date         string   `json:"date,omitempty"`
	Description  string   `json:"description,omitempty"`
	Category     string   `json:"category,omitempty"`
	Significance string   `json:"significance,omitempty"`
	Location     string   `json:"location,omitempty"`
	Characters   []string `json:"characters,omitempty"`
}

func (t TimelineEvent) Ref() Ref                   { return Ref{Kind: KindTimeline, ID: t.ID} }
func (t TimelineEvent) DisplayTitle() string       { return t.Title }
func (t TimelineEvent) DisplayCategory() string    { return t.Significance }
func (t TimelineEvent) DisplayDescription() string { return t.Description }

func (t TimelineEvent) SearchFields() []Field {
	return []Field{
		{Name: "title", Value: t.Title},
		{Name: "description", Value: t.Description},
		{Name: "category", Value: t.Category},
		{Name: "location", Value: t.Location},
	}
}

// MagicSystem describes how a kind of magic works.
type MagicSystem struct {
	ID          int    `json:"id"`
	ProjectID   int    `json:"projectId"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	Rules       string `json:"rules,omitempty"`
	Limitations string `json:"limitations,omitempty"`
	Source      string `json:"source,omitempty"`
}

func (m MagicSystem) Ref() Ref                   { return Ref{Kind: KindMagic, ID: m.ID} }
func (m MagicSystem) DisplayTitle() string       { return m.Name }
func (m MagicSystem) DisplayCategory() string    { return m.Category }
func (m MagicSystem) DisplayDescription() string { return m.Description }

func (m MagicSystem) SearchFields() []Field {
	return []Field{
		{Name: "name", Value: m.Name},
		{Name: "description", Value: m.Description},
		{Name: "rules", Value: m.Rules},
		{Name: "source", Value: m.Source},
	}
}

// LoreEntry is a piece of world lore.
type LoreEntry struct {
	ID        int      `json:"id"`
	ProjectID int      `json:"projectId"`
	Title     string   `json:"title"`
	Content   string   `json:"content,omitempty"`
	Category  string   `json:"category,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

func (l LoreEntry) Ref() Ref                   { return Ref{Kind: KindLore, ID: l.ID} }
func (l LoreEntry) DisplayTitle() string       { return l.Title }
func (l LoreEntry) DisplayCategory() string    { return l.Category }
func (l LoreEntry) DisplayDescription() string { return Snippet(l.Content) }

func (l LoreEntry) SearchFields() []Field {
	return []Field{
		{Name: "title", Value: l.Title},
		{Name: "content", Value: l.Content},
		{Name: "category", Value: l.Category},
	}
}

// Note is a free-form writer's note.
type Note struct {
	ID        int    `json:"id"`
	ProjectID int    `json:"projectId"`
	Title     string `json:"title"`
	Content   string `json:"content,omitempty"`
	Type      string `json:"type,omitempty"`
}

func (n Note) Ref() Ref                   { return Ref{Kind: KindNote, ID: n.ID} }
func (n Note) DisplayTitle() string       { return n.Title }
func (n Note) DisplayCategory() string    { return n.Type }
func (n Note) DisplayDescription() string { return Snippet(n.Content) }

func (n Note) SearchFields() []Field {
	return []Field{
		{Name: "title", Value: n.Title},
		{Name: "content", Value: n.Content},
	}
}

// SnippetLength is the rune length long-form content is cut to in listings.
const SnippetLength = 100

// Snippet truncates s to SnippetLength runes followed by an ellipsis.
func Snippet(s string) string {
	runes := []rune(s)
	if len(runes) <= SnippetLength {
		return s
	}
	return string(runes[:SnippetLength]) + "..."
}
