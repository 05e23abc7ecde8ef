package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"tmdb": map[string]any{
			"apiKey":       "",
			"imageBaseUrl": "",
		},
		"firebase": map[string]any{
			"projectId": "",
			"webApiKey": "",
		},
		"session": map[string]any{
			"mirrorPath": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "TMDB_APIKEY", want: "tmdb.apiKey"},
		{envKey: "TMDB_IMAGEBASEURL", want: "tmdb.imageBaseUrl"},
		{envKey: "FIREBASE_PROJECTID", want: "firebase.projectId"},
		{envKey: "FIREBASE_WEBAPIKEY", want: "firebase.webApiKey"},
		{envKey: "SESSION_MIRRORPATH", want: "session.mirrorPath"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
