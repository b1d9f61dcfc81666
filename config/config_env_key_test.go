package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mongo": map[string]any{
			"uri":          "",
			"transactions": false,
		},
		"payment": map[string]any{
			"stripe": map[string]any{
				"secretKey": "",
			},
		},
		"mealRequest": map[string]any{
			"dedupeScope": "meal",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MONGO_URI", want: "mongo.uri"},
		{envKey: "MONGO_TRANSACTIONS", want: "mongo.transactions"},
		{envKey: "PAYMENT_STRIPE_SECRETKEY", want: "payment.stripe.secretKey"},
		{envKey: "MEALREQUEST_DEDUPESCOPE", want: "mealRequest.dedupeScope"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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
