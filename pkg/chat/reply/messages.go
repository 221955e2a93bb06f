package reply

import (
	"fmt"

	"admissions-chat-be/pkg/chat"
)

// Fixed scripted replies. The qualification script is deliberately not
// model-generated so its behavior stays deterministic and testable.
const (
	Greeting = "Hey! 👋 Welcome to GCC School!\n\nHow can I help you today?"

	AskData = "Before we proceed, please enter your Name and Phone Number (e.g., John Doe, 9876543210)."

	AskBothFields = "Please provide your Name and a valid 10-digit Phone Number."

	RefusalPersuasion = "I understand. However, I need your Name and Phone Number to assist you further with course details or admissions. Can you please provide them?"

	ExistingUserResponse = "As an existing student, do you need help with your login or course materials?"

	NewUserResponse = "Great! We can help you with admissions and guidance. What course are you interested in?"

	Apology = "I'm sorry, I encountered an error processing your request."
)

// OptionMenu lists the quick-reply buttons offered once qualification
// completes.
func OptionMenu() []string {
	return []string{
		"Explore Courses",
		"Apply for Admission",
		"Access LMS / Student Login",
		"Talk to a counsellor",
		"Ask a Question",
	}
}

// OptionMenuMessage thanks the visitor by name and presents the menu.
func OptionMenuMessage(name string) string {
	return fmt.Sprintf("Thanks %s! Please select an option below:", name)
}

// Corrective returns the prompt for a WAITING_FOR_DATA turn that did not
// complete qualification. The decision table is fixed: same accumulated
// data and digit count always produce the same message.
//
//	name missing, phone missing, 1-9 digits  -> too-short callout
//	name missing, phone missing, no digits   -> ask for both
//	name valid,   phone missing              -> thank by name, ask phone
//	                                            (with too-short callout when partial digits present)
//	name missing, phone valid                -> thank for number, ask name
func Corrective(data chat.UserData, digitCount int) string {
	hasName := chat.ValidName(data.Name)
	hasPhone := chat.ValidPhone(data.PhoneNumber)

	switch {
	case hasName && !hasPhone:
		msg := fmt.Sprintf("Thanks %s! Please provide your 10-digit Phone Number.", data.Name)
		if digitCount > 0 && digitCount < 10 {
			msg += fmt.Sprintf(" The number you entered has only %d digits.", digitCount)
		}
		return msg
	case !hasName && hasPhone:
		return "Thanks for the number! Please provide your Name."
	case digitCount > 0 && digitCount < 10:
		return fmt.Sprintf("That phone number looks too short (%d digits). Please provide your Name and a valid 10-digit Phone Number.", digitCount)
	default:
		return AskBothFields
	}
}
