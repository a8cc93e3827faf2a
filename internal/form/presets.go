package form

// Preset is one entry of the preset framework picker.
type Preset struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// PresetFrameworks lists the picker's default options in display order.
// Selections are not restricted to these values.
var PresetFrameworks = []Preset{
	{Key: "trust", Label: "信任", Value: "信任"},
	{Key: "price", Label: "价格", Value: "价格"},
	{Key: "quality", Label: "品质", Value: "品质"},
	{Key: "emotion", Label: "情感", Value: "情感"},
	{Key: "professional", Label: "专业", Value: "专业"},
	{Key: "creative", Label: "创意", Value: "创意"},
}
