package llm

import (
	"fmt"
	"strings"

	"github.com/ppiankov/contextboard/internal/model"
)

// InterpretationInstruction is the fixed system instruction sent with every
// interpretation request. The reply must be a bare JSON object.
var InterpretationInstruction = fmt.Sprintf(`You convert short real-world phrases (store promotions, instructions) into concrete concepts for an AAC (augmentative and alternative communication) symbol board.

CRITICAL RULES:
1. Reply with ONLY a JSON object of the shape {"intent": string, "concepts": [{"type": string, "value": string | number}]}.
2. Allowed concept types: %s. Use no other types.
3. A "quantity" concept's value MUST be a JSON number, never a word.
4. Values are short lowercase tokens joined with underscores (e.g. "second_item_free"). No sentences.
5. No prose, no explanations, no idioms, no markdown outside the JSON.`, allowedTypes())

// BuildInterpretationPrompt constructs the user message for one phrase
func BuildInterpretationPrompt(phrase string) string {
	return fmt.Sprintf("Phrase: %q\n\nReturn the JSON object now.", phrase)
}

func allowedTypes() string {
	names := make([]string, len(model.ConceptTypes))
	for i, t := range model.ConceptTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
