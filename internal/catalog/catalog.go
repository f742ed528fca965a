// Package catalog holds the fixed, compile-time option lists a room can reference:
// color palettes, profile frames, radio and shelf presets, shelf objects and stickers.
// Every list is indexed once at init so lookups by id are O(1).
package catalog

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type RadioPreset struct {
	Name    string `json:"name"`
	Body    string `json:"body"`
	Speaker string `json:"speaker"`
	Handle  string `json:"handle"`
	Buttons string `json:"buttons"`
	Detail  string `json:"detail"`
}

type ShelfPreset struct {
	Name     string `json:"name"`
	Wood     string `json:"wood"`
	Interior string `json:"interior"`
	Outline  string `json:"outline"`
	Plank    string `json:"plank"`
}

type ShelfObject struct {
	ID    string `json:"id"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Size  string `json:"size"`
}

type Sticker struct {
	ID    string `json:"id"`
	Emoji string `json:"emoji"`
	Label string `json:"label"`
}

var swatchColors = []string{
	"#f4a0a0", "#8b2020", "#4caf50", "#b2f0e8", "#c0524e",
	"#7c5cad", "#f4c842", "#f4872a", "#4a90d9", "#aaaaaa",
	"#d4a0d4", "#3a7a3a", "#f08080", "#5c5c8a", "#e8d5a3",
	"#2e8b8b", "#a0c4f4", "#c4a0f4",
}

var bgColors = []string{
	"#c8e8ed", "#f4a0a0", "#b2e8b2", "#f4e8a0", "#c8b2f0",
	"#f4c8a0", "#a0c8f4", "#f4a0d4", "#aaaaaa", "#d4c8b2",
	"#8b2020", "#4caf50", "#2e6b9e", "#7c5cad", "#c0524e",
	"#b5813b", "#3a7a3a", "#f08080",
}

var frameImages = []string{
	"Group 27.png",
	"image-removebg-preview (1) 1.png",
	"image-removebg-preview (2) 1.png",
	"image-removebg-preview 1.png",
	"image_2026-02-12_132945066-removebg-preview 1.png",
	"image_2026-02-12_133121176-removebg-preview 1.png",
}

var radioPresets = []RadioPreset{
	{Name: "Classic Red", Body: "#e74c3c", Speaker: "#2c3e50", Handle: "#7f8c8d", Buttons: "#f39c12", Detail: "#ecf0f1"},
	{Name: "Ocean Blue", Body: "#2980b9", Speaker: "#1a252f", Handle: "#95a5a6", Buttons: "#e67e22", Detail: "#ecf0f1"},
	{Name: "Purple Haze", Body: "#8e44ad", Speaker: "#2c2c54", Handle: "#a0a0a0", Buttons: "#e74c3c", Detail: "#f5f5f5"},
	{Name: "Mint Fresh", Body: "#1abc9c", Speaker: "#2d3436", Handle: "#b2bec3", Buttons: "#fdcb6e", Detail: "#ffffff"},
	{Name: "Sunset", Body: "#e67e22", Speaker: "#34495e", Handle: "#bdc3c7", Buttons: "#c0392b", Detail: "#fef9ef"},
	{Name: "Midnight", Body: "#2c3e50", Speaker: "#1a1a2e", Handle: "#636e72", Buttons: "#00cec9", Detail: "#dfe6e9"},
	{Name: "Bubblegum", Body: "#fd79a8", Speaker: "#6c5ce7", Handle: "#b2bec3", Buttons: "#fdcb6e", Detail: "#ffffff"},
	{Name: "Forest", Body: "#27ae60", Speaker: "#2d3436", Handle: "#6c5ce7", Buttons: "#f39c12", Detail: "#dfe6e9"},
}

var shelfPresets = []ShelfPreset{
	{Name: "Oak", Wood: "#b5813b", Interior: "#c9a96e", Outline: "#8a5e22", Plank: "#8a5e22"},
	{Name: "Walnut", Wood: "#5c3d2e", Interior: "#7a5a47", Outline: "#3e2a1e", Plank: "#4a3428"},
	{Name: "White", Wood: "#e8e0d4", Interior: "#f5f0e8", Outline: "#c8bfb0", Plank: "#d5cdc0"},
	{Name: "Cherry", Wood: "#8b3a3a", Interior: "#a85555", Outline: "#6b2222", Plank: "#7a3030"},
	{Name: "Ebony", Wood: "#2c2c2c", Interior: "#3d3d3d", Outline: "#1a1a1a", Plank: "#252525"},
	{Name: "Pine", Wood: "#d4a85c", Interior: "#e5c888", Outline: "#b08430", Plank: "#c09540"},
	{Name: "Bamboo", Wood: "#c8b560", Interior: "#ddd08a", Outline: "#a8953a", Plank: "#b8a550"},
	{Name: "Rose", Wood: "#9e6b6b", Interior: "#b88888", Outline: "#7a4e4e", Plank: "#8a5e5e"},
}

var shelfObjects = []ShelfObject{
	{ID: "plant", Icon: "🪴", Label: "Plant", Size: "3.5rem"},
	{ID: "lamp", Icon: "🛋️", Label: "Lamp", Size: "3.5rem"},
	{ID: "books", Icon: "📚", Label: "Books", Size: "3rem"},
	{ID: "coffee", Icon: "☕", Label: "Coffee", Size: "3rem"},
	{ID: "globe", Icon: "🌍", Label: "Globe", Size: "3rem"},
	{ID: "teddy", Icon: "🧸", Label: "Teddy", Size: "3.5rem"},
	{ID: "candle", Icon: "🕯️", Label: "Candle", Size: "3rem"},
	{ID: "clock", Icon: "🕰️", Label: "Clock", Size: "3rem"},
	{ID: "camera", Icon: "📷", Label: "Camera", Size: "3rem"},
	{ID: "trophy", Icon: "🏆", Label: "Trophy", Size: "3rem"},
	{ID: "vinyl", Icon: "💿", Label: "Vinyl", Size: "3rem"},
	{ID: "headphones", Icon: "🎧", Label: "Headphones", Size: "3rem"},
}

var stickers = []Sticker{
	{ID: "star", Emoji: "⭐", Label: "Star"},
	{ID: "heart", Emoji: "❤️", Label: "Heart"},
	{ID: "fire", Emoji: "🔥", Label: "Fire"},
	{ID: "rainbow", Emoji: "🌈", Label: "Rainbow"},
	{ID: "music", Emoji: "🎵", Label: "Music"},
	{ID: "butterfly", Emoji: "🦋", Label: "Butterfly"},
	{ID: "sparkles", Emoji: "✨", Label: "Sparkles"},
	{ID: "flower", Emoji: "🌸", Label: "Flower"},
	{ID: "lightning", Emoji: "⚡", Label: "Lightning"},
	{ID: "peace", Emoji: "✌️", Label: "Peace"},
	{ID: "smiley", Emoji: "😎", Label: "Cool"},
	{ID: "alien", Emoji: "👽", Label: "Alien"},
}

var (
	shelfObjectsByID map[string]ShelfObject
	stickersByID     map[string]Sticker
)

func init() {
	shelfObjectsByID = make(map[string]ShelfObject, len(shelfObjects))
	for _, o := range shelfObjects {
		shelfObjectsByID[o.ID] = o
	}

	stickersByID = make(map[string]Sticker, len(stickers))
	for _, s := range stickers {
		stickersByID[s.ID] = s
	}
}

func SwatchColors() []string { return slices.Clone(swatchColors) }

func BackgroundColors() []string { return slices.Clone(bgColors) }

func FrameImages() []string { return slices.Clone(frameImages) }

func RadioPresets() []RadioPreset { return slices.Clone(radioPresets) }

func ShelfPresets() []ShelfPreset { return slices.Clone(shelfPresets) }

func ShelfObjects() []ShelfObject { return slices.Clone(shelfObjects) }

func Stickers() []Sticker { return slices.Clone(stickers) }

// Frame returns the frame image file for index.
func Frame(index int) (string, bool) {
	if index < 0 || index >= len(frameImages) {
		return "", false
	}

	return frameImages[index], true
}

func RadioPresetAt(index int) (RadioPreset, bool) {
	if index < 0 || index >= len(radioPresets) {
		return RadioPreset{}, false
	}

	return radioPresets[index], true
}

func ShelfPresetAt(index int) (ShelfPreset, bool) {
	if index < 0 || index >= len(shelfPresets) {
		return ShelfPreset{}, false
	}

	return shelfPresets[index], true
}

func ShelfObjectByID(id string) (ShelfObject, bool) {
	o, ok := shelfObjectsByID[id]
	return o, ok
}

func StickerByID(id string) (Sticker, bool) {
	s, ok := stickersByID[id]
	return s, ok
}

// StickerIDs returns the known sticker ids in lexical order.
func StickerIDs() []string {
	ids := maps.Keys(stickersByID)
	slices.Sort(ids)
	return ids
}

// ShelfObjectIDs returns the known shelf object ids in lexical order.
func ShelfObjectIDs() []string {
	ids := maps.Keys(shelfObjectsByID)
	slices.Sort(ids)
	return ids
}

// All is the full catalog as served to clients.
type All struct {
	SwatchColors     []string      `json:"swatch_colors"`
	BackgroundColors []string      `json:"background_colors"`
	FrameImages      []string      `json:"frame_images"`
	RadioPresets     []RadioPreset `json:"radio_presets"`
	ShelfPresets     []ShelfPreset `json:"shelf_presets"`
	ShelfObjects     []ShelfObject `json:"shelf_objects"`
	Stickers         []Sticker     `json:"stickers"`
}

func Snapshot() All {
	return All{
		SwatchColors:     SwatchColors(),
		BackgroundColors: BackgroundColors(),
		FrameImages:      FrameImages(),
		RadioPresets:     RadioPresets(),
		ShelfPresets:     ShelfPresets(),
		ShelfObjects:     ShelfObjects(),
		Stickers:         Stickers(),
	}
}
