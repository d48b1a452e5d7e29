package utils

import "fmt"

// Contains checks if a string slice contains a specific string
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// ContainsInt checks if an int slice contains a specific int
func ContainsInt(slice []int, item int) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// GetIDFromObject extracts a numeric ID from various API object formats
func GetIDFromObject(obj interface{}) int {
	if obj == nil {
		return 0
	}

	switch v := obj.(type) {
	case int:
		return v
	case float64:
		return int(v)
	case string:
		var id int
		if _, err := fmt.Sscanf(v, "%d", &id); err == nil {
			return id
		}
		return 0
	case map[string]interface{}:
		if id, ok := v["id"].(int); ok {
			return id
		}
		if id, ok := v["id"].(float64); ok {
			return int(id)
		}
		if id, ok := v["id"].(string); ok {
			var parsedID int
			if _, err := fmt.Sscanf(id, "%d", &parsedID); err == nil {
				return parsedID
			}
		}
	}

	return 0
}
