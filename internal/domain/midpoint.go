package domain

type MidpointDefinition struct {
	Planet1  Planet   `json:"planet1"`
	Planet2  Planet   `json:"planet2"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

func (d MidpointDefinition) ID() string {
	return string(d.Planet1) + "/" + string(d.Planet2)
}

// MidpointCatalog is the fixed set of symbolic midpoints.
var MidpointCatalog = []MidpointDefinition{
	{Planet1: Sun, Planet2: Moon, Name: "Soul Point", Keywords: []string{"inner union", "relationship", "self-integration"}},
	{Planet1: Venus, Planet2: Mars, Name: "Passion Point", Keywords: []string{"attraction", "desire", "romance"}},
	{Planet1: Sun, Planet2: Jupiter, Name: "Success Point", Keywords: []string{"recognition", "growth", "good fortune"}},
	{Planet1: Moon, Planet2: Venus, Name: "Affection Point", Keywords: []string{"tenderness", "comfort", "love"}},
	{Planet1: Mercury, Planet2: Jupiter, Name: "Wisdom Point", Keywords: []string{"learning", "optimism", "publishing"}},
	{Planet1: Jupiter, Planet2: Saturn, Name: "Destiny Point", Keywords: []string{"social timing", "structure", "ambition"}},
	{Planet1: Mars, Planet2: Saturn, Name: "Endurance Point", Keywords: []string{"discipline", "frustration", "hard work"}},
	{Planet1: Sun, Planet2: Saturn, Name: "Duty Point", Keywords: []string{"responsibility", "authority", "maturity"}},
	{Planet1: Venus, Planet2: Jupiter, Name: "Joy Point", Keywords: []string{"abundance", "generosity", "pleasure"}},
	{Planet1: Mars, Planet2: Jupiter, Name: "Achievement Point", Keywords: []string{"enterprise", "courage", "expansion"}},
	{Planet1: Sun, Planet2: Mercury, Name: "Intellect Point", Keywords: []string{"self-expression", "ideas", "communication"}},
	{Planet1: Moon, Planet2: Mars, Name: "Instinct Point", Keywords: []string{"emotional drive", "reactivity", "protection"}},
	{Planet1: Saturn, Planet2: Pluto, Name: "Transformation Point", Keywords: []string{"endings", "restructuring", "power"}},
}

type Midpoint struct {
	ID        string   `json:"id"`
	Planet1   Planet   `json:"planet1"`
	Planet2   Planet   `json:"planet2"`
	Longitude float64  `json:"longitude"`
	Sign      Sign     `json:"sign"`
	Degree    int      `json:"degree"`
	Minute    int      `json:"minute"`
	Name      string   `json:"name"`
	Keywords  []string `json:"keywords"`
}

type MidpointActivation struct {
	Midpoint    Midpoint   `json:"midpoint"`
	Activator   string     `json:"activator"`
	AspectType  AspectType `json:"aspectType"`
	Orb         float64    `json:"orb"`
	Description string     `json:"description"`
}
