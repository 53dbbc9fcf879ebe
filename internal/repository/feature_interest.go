package repository

import "encoding/json"

// feature_interest is stored as a single TEXT column holding a JSON array of
// strings. The serialized form never leaves this package: callers always see
// []string, and an empty selection is an empty sequence, not null.

func encodeFeatureInterest(interest []string) (string, error) {
	if interest == nil {
		interest = []string{}
	}
	encoded, err := json.Marshal(interest)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func decodeFeatureInterest(encoded *string) ([]string, error) {
	if encoded == nil || *encoded == "" {
		return []string{}, nil
	}
	var interest []string
	if err := json.Unmarshal([]byte(*encoded), &interest); err != nil {
		return nil, err
	}
	if interest == nil {
		interest = []string{}
	}
	return interest, nil
}
