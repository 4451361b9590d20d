package messaging

import "strings"

// MatchTopic reports whether a binding pattern matches a routing key. Words
// are dot-separated; "#" matches zero or more words and "*" matches exactly
// one word. A pattern-final "*" instead matches all remaining words: event
// types are themselves dotted ("lead.stage.changed"), so a binding like
// "lead.events.*" has to capture every key under its domain.
func MatchTopic(pattern, key string) bool {
	return matchWords(strings.Split(pattern, "."), strings.Split(key, "."))
}

func matchWords(pattern, key []string) bool {
	if len(pattern) == 0 {
		return len(key) == 0
	}

	switch pattern[0] {
	case "#":
		if matchWords(pattern[1:], key) {
			return true
		}
		if len(key) == 0 {
			return false
		}
		return matchWords(pattern, key[1:])
	case "*":
		if len(key) == 0 {
			return false
		}
		if len(pattern) == 1 {
			return true
		}
		return matchWords(pattern[1:], key[1:])
	default:
		if len(key) == 0 || pattern[0] != key[0] {
			return false
		}
		return matchWords(pattern[1:], key[1:])
	}
}
