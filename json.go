package numerics

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// jsonFloat encodes non-finite values as the strings "NaN", "+Inf" and
// "-Inf", which plain JSON numbers cannot carry.
type jsonFloat float32

type jsonVector2 struct {
	X jsonFloat `json:"x"`
	Y jsonFloat `json:"y"`
}

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 32), nil
}

func (f *jsonFloat) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		u, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("numerics: invalid component %s: %w", s, err)
		}
		switch u {
		case "NaN":
			*f = jsonFloat(math.NaN())
		case "+Inf", "Inf":
			*f = jsonFloat(math.Inf(1))
		case "-Inf":
			*f = jsonFloat(math.Inf(-1))
		default:
			return fmt.Errorf("numerics: invalid component %s", s)
		}
		return nil
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return fmt.Errorf("numerics: invalid component %s: %w", s, err)
	}
	*f = jsonFloat(v)
	return nil
}

// MarshalJSON writes {"x":..,"y":..}. NaN and infinite components are
// written as strings so every vector can be encoded.
func (a Vector2) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonVector2{jsonFloat(a.X), jsonFloat(a.Y)})
}

func (a *Vector2) UnmarshalJSON(data []byte) error {
	j := jsonVector2{jsonFloat(a.X), jsonFloat(a.Y)}
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	a.X, a.Y = float32(j.X), float32(j.Y)
	return nil
}
