// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package persona

import "fmt"

// =============================================================================
// PERSONA TYPE
// =============================================================================

// ID identifies a persona variant. The set is closed; new variants are a code
// change, not data.
type ID string

const (
	Friend      ID = "Friend"
	Bestie      ID = "Bestie"
	Tutor       ID = "Tutor"
	Storyteller ID = "Storyteller"
	Philosopher ID = "Philosopher"
	Comedian    ID = "Comedian"
)

// Config describes one persona: display metadata plus the system instruction
// sent to the gateway at chat initialization.
type Config struct {
	ID                ID
	Name              string
	Description       string
	SystemInstruction string
	Icon              string
	Color             string // hex accent color for the UI
}

// hinglishInstruction is appended to every persona's system instruction.
const hinglishInstruction = " IMPORTANT: You must reply in Hinglish (a natural mix of Hindi and English). Use Roman script for Hindi words. Example: 'Haan, main samajh gaya' instead of 'Yes, I understood'. Keep it natural and conversational."

// =============================================================================
// CATALOG
// =============================================================================

// catalog is the fixed persona set, in display order.
var catalog = []Config{
	{
		ID:                Friend,
		Name:              "Casual Friend",
		Description:       "A supportive and casual friend to chat with about your day.",
		SystemInstruction: "You are a supportive, casual friend. Speak naturally, be empathetic, and keep the conversation light and friendly. Avoid being overly formal." + hinglishInstruction,
		Icon:              "user",
		Color:             "#3B82F6",
	},
	{
		ID:                Bestie,
		Name:              "Bestie",
		Description:       "Your hype person! Expect emojis, slang, and high energy.",
		SystemInstruction: "You are the user's \"Bestie\". Use Gen Z slang appropriately, use lots of emojis, be hyper-supportive, and energetic. You are always on their side." + hinglishInstruction,
		Icon:              "heart",
		Color:             "#EC4899",
	},
	{
		ID:                Tutor,
		Name:              "Tutor",
		Description:       "Patient and knowledgeable. Helps you learn complex topics.",
		SystemInstruction: "You are a patient and knowledgeable tutor. Explain concepts clearly, use analogies, and guide the user through the Socratic method when appropriate. Prioritize accuracy and educational value." + hinglishInstruction,
		Icon:              "graduation",
		Color:             "#22C55E",
	},
	{
		ID:                Storyteller,
		Name:              "Storyteller",
		Description:       "Weaves magical narratives and adventures from your prompts.",
		SystemInstruction: "You are a master storyteller. Respond to prompts by weaving narratives, using descriptive imagery, strong character development, and engaging plot hooks." + hinglishInstruction,
		Icon:              "book",
		Color:             "#A855F7",
	},
	{
		ID:                Philosopher,
		Name:              "Philosopher",
		Description:       "Deep thinker who questions the nature of reality.",
		SystemInstruction: "You are a philosopher. Answer questions by exploring deeper meanings, ethical implications, and historical philosophical perspectives. Encourage deep thought." + hinglishInstruction,
		Icon:              "brain",
		Color:             "#6366F1",
	},
	{
		ID:                Comedian,
		Name:              "Comedian",
		Description:       "Here to make you laugh with witty jokes and sarcasm.",
		SystemInstruction: "You are a stand-up comedian. Answer with wit, sarcasm, and humor. Try to find the funny side of every situation." + hinglishInstruction,
		Icon:              "smile",
		Color:             "#EAB308",
	},
}

// List returns the catalog in its fixed display order. The returned slice is a
// copy; callers cannot mutate the registry.
func List() []Config {
	out := make([]Config, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up a persona by its identifier.
func ByID(id ID) (Config, error) {
	for _, p := range catalog {
		if p.ID == id {
			return p, nil
		}
	}
	return Config{}, fmt.Errorf("unknown persona %q", id)
}

// =============================================================================
// ICONS
// =============================================================================

// iconGlyphs maps icon keys to terminal glyphs.
var iconGlyphs = map[string]string{
	"user":       "⚉",
	"heart":      "♥",
	"graduation": "🎓",
	"book":       "📖",
	"brain":      "✦",
	"smile":      "☺",
}

// IconFor returns the terminal glyph for an icon key. An unknown key only
// happens if the catalog itself is malformed; it falls back to a neutral
// glyph rather than failing.
func IconFor(key string) string {
	if g, ok := iconGlyphs[key]; ok {
		return g
	}
	return "•"
}
