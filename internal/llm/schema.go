package llm

import (
	genai "google.golang.org/genai"

	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/types"
)

// Response schemas declared to the model. These mirror the structs in
// internal/types exactly; the model is instructed to honor them and the
// parsed response is still validated on the way back in.

var plantInfoSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"name":           {Type: genai.TypeString},
		"scientificName": {Type: genai.TypeString},
		"description":    {Type: genai.TypeString},
		"care": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"water":       {Type: genai.TypeString},
				"light":       {Type: genai.TypeString},
				"soil":        {Type: genai.TypeString},
				"temperature": {Type: genai.TypeString},
			},
			Required: []string{"water", "light", "soil", "temperature"},
		},
		"funFact": {Type: genai.TypeString},
	},
	Required: []string{"name", "scientificName", "description", "care", "funFact"},
}

var diagnosisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"healthStatus": {
			Type: genai.TypeString,
			Enum: []string{
				string(types.StatusHealthy),
				string(types.StatusSick),
				string(types.StatusUnknown),
			},
		},
		"diagnosis": {Type: genai.TypeString},
		"symptoms": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
		"treatment": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
		"prevention": {Type: genai.TypeString},
	},
	Required: []string{"healthStatus", "diagnosis", "symptoms", "treatment", "prevention"},
}
