package analysis

import "testing"

func TestExtractDecision(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantToken string
		wantBuy   bool
	}{
		{
			name:      "compact fragment",
			text:      `{"analysis": "Dogecoin is trending.", "final_decision": {"token_name": "Dogecoin", "decision": true}}`,
			wantToken: "Dogecoin",
			wantBuy:   true,
		},
		{
			name: "fragment wrapped in prose",
			text: `Here is my assessment of the market.

{
  "analysis": "Volumes are thin across the board.",
  "final_decision": {
    "token_name": "Pepe",
    "decision": false
  }
}

Let me know if you need more detail.`,
			wantToken: "Pepe",
			wantBuy:   false,
		},
		{
			name:      "extra whitespace between tokens",
			text:      `"final_decision" :   {  "token_name" :"Bonk" ,   "decision" :  true }`,
			wantToken: "Bonk",
			wantBuy:   true,
		},
		{
			name:      "no whitespace at all",
			text:      `"final_decision":{"token_name":"Floki","decision":false}`,
			wantToken: "Floki",
			wantBuy:   false,
		},
		{
			name:      "empty input",
			text:      "",
			wantToken: "None",
			wantBuy:   false,
		},
		{
			name:      "prose without fragment",
			text:      "I cannot recommend any coin at this time.",
			wantToken: "None",
			wantBuy:   false,
		},
		{
			name:      "reordered keys do not match",
			text:      `"final_decision": {"decision": true, "token_name": "Dogecoin"}`,
			wantToken: "None",
			wantBuy:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDecision(tt.text)
			if got.TokenName != tt.wantToken {
				t.Errorf("TokenName = %q, want %q", got.TokenName, tt.wantToken)
			}
			if got.Decision != tt.wantBuy {
				t.Errorf("Decision = %v, want %v", got.Decision, tt.wantBuy)
			}
			if got.Reason != "" {
				t.Errorf("Reason = %q, want empty", got.Reason)
			}
		})
	}
}

func TestExtractDecisionWithReason(t *testing.T) {
	text := `{
  "analysis": "Ethereum has the strongest fundamentals.",
  "final_decision": {
    "token_name": "Ethereum",
    "decision": true,
    "reason": "Strong developer activity and upcoming upgrades."
  }
}`

	got := ExtractDecisionWithReason(text)
	if got.TokenName != "Ethereum" {
		t.Errorf("TokenName = %q, want %q", got.TokenName, "Ethereum")
	}
	if !got.Decision {
		t.Error("Decision = false, want true")
	}
	if got.Reason != "Strong developer activity and upcoming upgrades." {
		t.Errorf("Reason = %q", got.Reason)
	}
}

func TestExtractDecisionWithReasonSentinel(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty input", ""},
		{"no fragment", "The market looks uncertain."},
		// The reason-bearing route requires all three keys; a fragment
		// without reason falls back to the sentinel wholesale.
		{"fragment missing reason", `"final_decision": {"token_name": "Cardano", "decision": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDecisionWithReason(tt.text)
			if got.TokenName != "None" {
				t.Errorf("TokenName = %q, want %q", got.TokenName, "None")
			}
			if got.Decision {
				t.Error("Decision = true, want false")
			}
			if got.Reason != "No data available." {
				t.Errorf("Reason = %q, want %q", got.Reason, "No data available.")
			}
		})
	}
}
