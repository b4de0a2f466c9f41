package catalog

import (
	"math/rand"
	"strings"
)

// categories is fixed for the process lifetime. Action order matters:
// the matcher picks the first keyword found in the command, so broader
// keywords go last within each table.
var categories = []Category{
	{
		Tag:        "phone",
		Name:       "Smartphone",
		DeviceType: "Mobile Device",
		Commands:   []string{"Call someone", "Send a message", "Check battery", "Set an alarm"},
		Actions: []Action{
			{Keyword: "call", Message: "Opening dialer", Icon: "📞", Color: "#3b82f6"},
			{Keyword: "message", Message: "Opening messages", Icon: "💬", Color: "#8b5cf6"},
			{Keyword: "battery", Message: "Battery at 78%", Icon: "🔋", Color: "#10b981"},
			{Keyword: "alarm", Message: "Alarm set for 7:00 AM", Icon: "⏰", Color: "#f59e0b"},
		},
	},
	{
		Tag:        "bottle",
		Name:       "Water Bottle",
		DeviceType: "Container",
		Commands:   []string{"Check water level", "Remind me to drink", "Track intake"},
		Actions: []Action{
			{Keyword: "level", Message: "Bottle is about half full", Icon: "💧", Color: "#06b6d4"},
			{Keyword: "remind", Message: "Hydration reminder set", Icon: "⏲️", Color: "#3b82f6"},
			{Keyword: "track", Message: "Intake logged", Icon: "📈", Color: "#10b981"},
		},
	},
	{
		Tag:        "tv",
		Name:       "Television",
		DeviceType: "Entertainment Device",
		Commands:   []string{"Turn on", "Turn off", "Change channel", "Volume up", "Volume down"},
		Actions: []Action{
			{Keyword: "on", Message: "TV turned on", Icon: "📺", Color: "#10b981"},
			{Keyword: "off", Message: "TV turned off", Icon: "📴", Color: "#ef4444"},
			{Keyword: "channel", Message: "Changing channel", Icon: "🔀", Color: "#8b5cf6"},
			{Keyword: "volume", Message: "Adjusting volume", Icon: "🔊", Color: "#f59e0b"},
		},
	},
	{
		Tag:        "ac",
		Name:       "Air Conditioner",
		DeviceType: "Climate Appliance",
		Commands:   []string{"Turn on", "Turn off", "Set temperature", "Fan speed"},
		Actions: []Action{
			{Keyword: "on", Message: "AC turned on", Icon: "❄️", Color: "#06b6d4"},
			{Keyword: "off", Message: "AC turned off", Icon: "📴", Color: "#ef4444"},
			{Keyword: "temperature", Message: "Temperature set to 22°C", Icon: "🌡️", Color: "#3b82f6"},
			{Keyword: "speed", Message: "Fan speed adjusted", Icon: "💨", Color: "#10b981"},
		},
	},
	{
		Tag:        "mic",
		Name:       "Microphone",
		DeviceType: "Audio Device",
		Commands:   []string{"Start recording", "Stop recording", "Mute", "Unmute"},
		Actions: []Action{
			{Keyword: "record", Message: "Recording started", Icon: "🎙️", Color: "#ef4444"},
			{Keyword: "stop", Message: "Recording stopped", Icon: "⏹️", Color: "#64748b"},
			{Keyword: "unmute", Message: "Microphone unmuted", Icon: "🎤", Color: "#10b981"},
			{Keyword: "mute", Message: "Microphone muted", Icon: "🔇", Color: "#f59e0b"},
		},
	},
	{
		Tag:        "fan",
		Name:       "Ceiling Fan",
		DeviceType: "Climate Appliance",
		Commands:   []string{"Turn on", "Turn off", "Speed up", "Slow down"},
		Actions: []Action{
			{Keyword: "on", Message: "Fan turned on", Icon: "🌀", Color: "#10b981"},
			{Keyword: "off", Message: "Fan turned off", Icon: "📴", Color: "#ef4444"},
			{Keyword: "up", Message: "Fan speed increased", Icon: "⬆️", Color: "#3b82f6"},
			{Keyword: "down", Message: "Fan speed decreased", Icon: "⬇️", Color: "#8b5cf6"},
		},
	},
	{
		Tag:        "light",
		Name:       "Smart Light",
		DeviceType: "Lighting",
		Commands:   []string{"Turn on", "Turn off", "Dim", "Brighten", "Change color"},
		Actions: []Action{
			{Keyword: "on", Message: "Light turned on", Icon: "💡", Color: "#f59e0b"},
			{Keyword: "off", Message: "Light turned off", Icon: "📴", Color: "#64748b"},
			{Keyword: "dim", Message: "Light dimmed", Icon: "🔅", Color: "#8b5cf6"},
			{Keyword: "bright", Message: "Brightness increased", Icon: "🔆", Color: "#f59e0b"},
			{Keyword: "color", Message: "Changing light color", Icon: "🎨", Color: "#ec4899"},
		},
	},
	{
		Tag:        "speaker",
		Name:       "Smart Speaker",
		DeviceType: "Audio Device",
		Commands:   []string{"Play music", "Pause", "Next track", "Volume up"},
		Actions: []Action{
			{Keyword: "play", Message: "Playing music", Icon: "🎵", Color: "#10b981"},
			{Keyword: "pause", Message: "Music paused", Icon: "⏸️", Color: "#64748b"},
			{Keyword: "next", Message: "Skipping to next track", Icon: "⏭️", Color: "#3b82f6"},
			{Keyword: "volume", Message: "Adjusting volume", Icon: "🔊", Color: "#f59e0b"},
		},
	},
	{
		Tag:        "other",
		Name:       "Unknown Object",
		DeviceType: "Generic Object",
		Commands:   []string{"Identify", "Describe"},
		Actions: []Action{
			{Keyword: "identify", Message: "Identifying object", Icon: "🔍", Color: "#3b82f6"},
			{Keyword: "describe", Message: "Describing object", Icon: "📝", Color: "#8b5cf6"},
		},
	},
}

func All() []Category {
	return categories
}

func Lookup(tag string) (Category, bool) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, c := range categories {
		if c.Tag == tag {
			return c, true
		}
	}
	return Category{}, false
}

func Random() Category {
	return categories[rand.Intn(len(categories))]
}
