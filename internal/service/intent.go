package service

import (
	"fmt"
	"regexp"
	"strings"

	"voiceorder/internal/model"
	"voiceorder/internal/utils"
)

// ClarificationResponse is returned when no intent rule matches
const ClarificationResponse = "I'm not sure how to help with that. You can ask me to place an order, request amenities, or ask for information."

// priorityIntents are evaluated before the rest of the table. Their keywords
// are short ("hi", "no", "issue") and would otherwise be shadowed by longer
// intents that happen to match first.
var priorityIntents = []model.IntentTag{
	model.IntentGreeting,
	model.IntentYesNo,
	model.IntentFeedbackOrComplaint,
}

// IntentRule is one row of the keyword cascade
type IntentRule struct {
	Intent   model.IntentTag
	Keywords []string
	Response string

	pattern *regexp.Regexp
}

// Matches reports whether any keyword occurs in the text on word boundaries
func (r *IntentRule) Matches(text string) bool {
	return r.pattern != nil && r.pattern.MatchString(text)
}

// DefaultIntentRules returns the hospitality intent table in declared order.
// The core ordering intents come straight after the priority rules; the
// narrower intents only match when none of their keywords do.
func DefaultIntentRules() []IntentRule {
	return []IntentRule{
		{
			Intent:   model.IntentGreeting,
			Keywords: []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening", "greetings"},
			Response: "Hello! How can I help you today?",
		},
		{
			Intent:   model.IntentYesNo,
			Keywords: []string{"yes", "no", "yeah", "yep", "nope", "nah", "okay", "ok"},
			Response: "Got it. Is there anything else I can help you with?",
		},
		{
			Intent: model.IntentFeedbackOrComplaint,
			Keywords: []string{"not happy", "complaint", "complain", "problem", "issue", "unsatisfied",
				"unhappy", "bad experience", "dissatisfied", "concern", "feedback", "disappointed"},
			Response: "We appreciate your feedback. Can you provide more details about the issue?",
		},
		{
			Intent: model.IntentRoomServiceOrder,
			Keywords: []string{"order", "bring", "get", "want", "have", "could i have", "i'd like", "please bring",
				"ice cream", "pizza", "sandwich", "burger", "food", "dinner", "meal", "lunch", "hungry"},
			Response: "Your order has been received. We'll prepare your food shortly.",
		},
		{
			Intent: model.IntentAmenitiesRequest,
			Keywords: []string{"need", "request", "extra", "more", "get me", "can i have", "could you provide",
				"send me", "bring me", "add", "towels", "pillow", "blanket", "toiletries"},
			Response: "Your request for additional amenities has been noted. We'll send them to your room soon.",
		},
		{
			Intent:   model.IntentInquiry,
			Keywords: []string{"time", "when", "where", "how", "what", "tell me about", "information", "details"},
			Response: "Could you please specify what information you would like?",
		},
		{
			Intent: model.IntentReservationRequest,
			Keywords: []string{"book", "reserve", "reservation", "table", "booking", "reserve a spot",
				"make a reservation", "sign up", "schedule"},
			Response: "Your reservation request is being processed. We'll confirm your booking shortly.",
		},
		{
			Intent: model.IntentCheckInOutRequest,
			Keywords: []string{"check-in", "check in", "check-out", "check out", "checkout", "early check",
				"late checkout", "arrival", "departure"},
			Response: "Your check-in/check-out request has been noted. Please proceed to the front desk for further assistance.",
		},
		{
			Intent:   model.IntentCancellation,
			Keywords: []string{"cancel", "cancellation", "call off"},
			Response: "Your cancellation request is being processed.",
		},
		{
			Intent:   model.IntentParkingInquiry,
			Keywords: []string{"parking", "park", "valet", "garage", "car park"},
			Response: "Guest parking is available in our garage, and valet service can be arranged at the front desk.",
		},
		{
			Intent: model.IntentMaintenance,
			Keywords: []string{"broken", "not working", "repair", "leak", "leaking", "maintenance", "fix",
				"air conditioning", "heater", "light bulb"},
			Response: "I've notified our maintenance team. A technician will be sent to your room shortly.",
		},
		{
			Intent:   model.IntentHousekeeping,
			Keywords: []string{"housekeeping", "clean", "cleaning", "tidy", "make up the room", "change the sheets", "vacuum"},
			Response: "Housekeeping has been notified and will service your room shortly.",
		},
		{
			Intent:   model.IntentPaymentInvoice,
			Keywords: []string{"bill", "invoice", "payment", "pay", "charge", "charges", "receipt", "credit card"},
			Response: "Let me pull up your billing information. A copy of your invoice will be sent to you.",
		},
		{
			Intent:   model.IntentLostAndFound,
			Keywords: []string{"lost", "left my", "missing", "forgot", "lost and found"},
			Response: "I've filed a report with our lost and found team. We'll let you know as soon as it turns up.",
		},
		{
			Intent:   model.IntentEventRoom,
			Keywords: []string{"event", "conference", "meeting room", "banquet", "ballroom", "wedding", "party"},
			Response: "Our events team will contact you about meeting and event room availability.",
		},
		{
			Intent: model.IntentLocalInformation,
			Keywords: []string{"nearby", "around here", "local", "attractions", "museum", "directions",
				"taxi", "airport", "sightseeing"},
			Response: "Our concierge can recommend local attractions and arrange transportation for you.",
		},
		{
			Intent:   model.IntentStaffAssistance,
			Keywords: []string{"speak to", "talk to", "manager", "staff", "concierge", "front desk", "assistance"},
			Response: "A member of our staff will be with you shortly.",
		},
		{
			Intent: model.IntentSpecialRequest,
			Keywords: []string{"special request", "allergy", "allergic", "birthday", "anniversary",
				"wheelchair", "accessible", "crib", "surprise"},
			Response: "Your special request has been noted and shared with our team.",
		},
		{
			Intent:   model.IntentGeneralInquiry,
			Keywords: []string{"question", "wondering", "curious", "wifi", "internet", "pool", "gym", "spa"},
			Response: "Happy to help. Let me find that information for you.",
		},
	}
}

// ValidateRules checks that every rule is usable and every intent appears once
func ValidateRules(rules []IntentRule) error {
	seen := make(map[model.IntentTag]bool, len(rules))
	for _, rule := range rules {
		if rule.Intent == model.IntentUnknown {
			return fmt.Errorf("intent table must not contain %s", model.IntentUnknown)
		}
		if seen[rule.Intent] {
			return fmt.Errorf("intent %s declared twice", rule.Intent)
		}
		seen[rule.Intent] = true
		if len(rule.Keywords) == 0 {
			return fmt.Errorf("intent %s has no keywords", rule.Intent)
		}
		if strings.TrimSpace(rule.Response) == "" {
			return fmt.Errorf("intent %s has no response", rule.Intent)
		}
		for _, kw := range rule.Keywords {
			if strings.TrimSpace(kw) == "" {
				return fmt.Errorf("intent %s has an empty keyword", rule.Intent)
			}
		}
	}
	return nil
}

// keywordPattern builds \b(?:k1|k2|...)\b with every keyword quoted
func keywordPattern(keywords []string) (*regexp.Regexp, error) {
	quoted := make([]string, len(keywords))
	for i, kw := range keywords {
		quoted[i] = regexp.QuoteMeta(strings.ToLower(strings.TrimSpace(kw)))
	}
	return regexp.Compile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// IntentClassifier is a deterministic first-match keyword cascade
type IntentClassifier struct {
	rules []IntentRule
}

// NewIntentClassifier validates and compiles the rules. Priority intents are
// moved to the front; the remaining rules keep their declared order.
func NewIntentClassifier(rules []IntentRule) (*IntentClassifier, error) {
	if err := ValidateRules(rules); err != nil {
		return nil, err
	}

	ordered := make([]IntentRule, 0, len(rules))
	for _, tag := range priorityIntents {
		for _, rule := range rules {
			if rule.Intent == tag {
				ordered = append(ordered, rule)
			}
		}
	}
	for _, rule := range rules {
		if !isPriority(rule.Intent) {
			ordered = append(ordered, rule)
		}
	}

	for i := range ordered {
		pattern, err := keywordPattern(ordered[i].Keywords)
		if err != nil {
			return nil, fmt.Errorf("failed to compile keywords for %s: %w", ordered[i].Intent, err)
		}
		ordered[i].pattern = pattern
	}

	return &IntentClassifier{rules: ordered}, nil
}

// Order returns the intents in evaluation order
func (c *IntentClassifier) Order() []model.IntentTag {
	tags := make([]model.IntentTag, len(c.rules))
	for i, rule := range c.rules {
		tags[i] = rule.Intent
	}
	return tags
}

// Classify returns the first rule matching the lowercased utterance, or Unknown
func (c *IntentClassifier) Classify(utterance string) model.ClassificationResult {
	text := utils.Lower(utterance)
	for i := range c.rules {
		rule := &c.rules[i]
		if rule.Matches(text) {
			return model.ClassificationResult{
				Intent:   rule.Intent,
				Label:    rule.Intent.Label(),
				Response: rule.Response,
				Source:   model.SourceRules,
			}
		}
	}

	return model.ClassificationResult{
		Intent:   model.IntentUnknown,
		Label:    model.IntentUnknown.Label(),
		Response: ClarificationResponse,
		Source:   model.SourceNone,
	}
}

func isPriority(tag model.IntentTag) bool {
	for _, p := range priorityIntents {
		if p == tag {
			return true
		}
	}
	return false
}
