// Package detect decides whether caller-supplied input looks like an
// exploitation attempt and, when it does, produces the canned flag payload
// the endpoint returns instead of its normal response. Endpoints skip their
// real logic entirely on a match; that dual-mode behavior is the point of
// the exercise, not a bug to fix.
package detect

import (
	"fmt"
	"strings"

	"nextgenmobiles/backend/internal/model"
)

const (
	FlagSQLInjection = "THM{SQL_INJECTION_SUCCESS}"
	FlagCSRF         = "THM{CSRF_EXPLOIT_SUCCESS}"
	FlagIDOR         = "THM{IDOR_EXPLOIT_SUCCESS}"
	FlagFileUpload   = "THM{UNRESTRICTED_FILE_UPLOAD_SUCCESS}"
	FlagStoredXSS    = "THM{STORED_XSS_SUCCESS}"
)

// Result is the payload returned when an exploit is detected. The optional
// fields carry per-endpoint context (offending payload, simulated SQL,
// target ids, stored file metadata).
type Result struct {
	Message        string              `json:"message"`
	Flag           string              `json:"flag"`
	Vulnerability  string              `json:"vulnerability"`
	Description    string              `json:"description"`
	Payload        string              `json:"payload,omitempty"`
	SQLQuery       string              `json:"sql_query,omitempty"`
	ExploitType    string              `json:"exploit_type,omitempty"`
	TargetUserID   int                 `json:"target_user_id,omitempty"`
	DeletedOrderID int                 `json:"deleted_order_id,omitempty"`
	File           *model.UploadedFile `json:"file,omitempty"`
}

var searchSQLPatterns = []string{
	"' or ", `" or `, "'--", "/*", "*/", "--", ";",
	" union ", " select ", " drop ", " insert ", " update ", " delete ",
}

// Login keywords stay space-delimited so ordinary credentials with embedded
// letter runs ("password" contains "or") do not trip the detector; quotes
// and comment markers match anywhere.
var loginSQLPatterns = []string{
	"'", `"`, ";", "--", "/*", "*/",
	" union ", " select ", " drop ", " insert ", " update ", " delete ",
	" or ", "' or '",
}

var xssPatterns = []string{
	"<script>", "</script>", "javascript:", "onload=", "onerror=",
	"onclick=", "alert(", "document.cookie",
}

func matchesAny(candidate string, patterns []string) bool {
	for _, pat := range patterns {
		if strings.Contains(candidate, pat) {
			return true
		}
	}
	return false
}

func looksLikeSQLInjection(candidate string, patterns []string) bool {
	lower := strings.ToLower(candidate)
	return matchesAny(lower, patterns) ||
		strings.Contains(lower, "'1'='1") ||
		strings.Contains(lower, " or 1=1")
}

// SearchInjection scans a product search query. Nil means clean.
func SearchInjection(query string) *Result {
	if !looksLikeSQLInjection(query, searchSQLPatterns) {
		return nil
	}
	return &Result{
		Message:       "SQL Injection detected in search!",
		Flag:          FlagSQLInjection,
		Vulnerability: "SQL Injection",
		Description:   "You successfully exploited the SQL injection vulnerability in the products search endpoint!",
		Payload:       query,
		ExploitType:   "Query manipulation in search parameter",
	}
}

// LoginInjection scans the concatenated login credentials. The embedded
// sql_query shows what the vulnerable statement would have looked like.
func LoginInjection(email, password string) *Result {
	payload := email + "|" + password
	if !looksLikeSQLInjection(payload, loginSQLPatterns) {
		return nil
	}
	return &Result{
		Message:       "SQL Injection detected!",
		Flag:          FlagSQLInjection,
		Vulnerability: "SQL Injection",
		Description:   "You successfully exploited the SQL injection vulnerability in the login form!",
		SQLQuery:      fmt.Sprintf("SELECT * FROM users WHERE email='%s' AND password='%s'", email, password),
		Payload:       payload,
	}
}

// ContactXSS scans a contact message for markup and script fragments.
func ContactXSS(message string) *Result {
	if !matchesAny(strings.ToLower(message), xssPatterns) {
		return nil
	}
	return &Result{
		Message:       "Stored XSS Vulnerability Detected!",
		Flag:          FlagStoredXSS,
		Vulnerability: "Stored Cross-Site Scripting (XSS)",
		Description:   "You successfully exploited the stored XSS vulnerability in the contact form!",
		Payload:       message,
		ExploitType:   "Stored XSS in contact message field",
	}
}

// OrderCSRF fires when a state-changing order deletion arrives without a
// CSRF token. Any non-empty token value passes.
func OrderCSRF(token string, orderID int) *Result {
	if token != "" {
		return nil
	}
	return &Result{
		Message:        "CSRF Vulnerability Detected!",
		Flag:           FlagCSRF,
		Vulnerability:  "Cross-Site Request Forgery (CSRF)",
		Description:    "You successfully exploited the CSRF vulnerability by deleting an order without proper CSRF protection!",
		DeletedOrderID: orderID,
		ExploitType:    "CSRF on state-changing action (order deletion)",
	}
}

// ProfileUpdateIDOR fires when a profile update names any user but the demo
// account.
func ProfileUpdateIDOR(userID int) *Result {
	if userID == model.DemoUserID {
		return nil
	}
	return &Result{
		Message:       "IDOR Vulnerability Detected!",
		Flag:          FlagIDOR,
		Vulnerability: "Insecure Direct Object Reference (IDOR)",
		Description:   "You successfully exploited the IDOR vulnerability by accessing another user's profile!",
		TargetUserID:  userID,
		ExploitType:   "Profile modification without authorization",
	}
}

// ProfileAccessIDOR is the URL-parameter variant of ProfileUpdateIDOR.
func ProfileAccessIDOR(userID int) *Result {
	if userID == model.DemoUserID {
		return nil
	}
	return &Result{
		Message:       "IDOR Vulnerability Detected!",
		Flag:          FlagIDOR,
		Vulnerability: "Insecure Direct Object Reference (IDOR)",
		Description:   "You successfully exploited the IDOR vulnerability by accessing another user's profile via URL parameter!",
		TargetUserID:  userID,
		ExploitType:   "Profile access without authorization",
	}
}

// UnrestrictedUpload reports that a disallowed file type was stored anyway.
// The extension check it accompanies is advisory only; by the time this is
// built the file is already on disk.
func UnrestrictedUpload(file *model.UploadedFile) *Result {
	return &Result{
		Message:       "Unrestricted File Upload Vulnerability Detected!",
		Flag:          FlagFileUpload,
		Vulnerability: "Unrestricted File Upload",
		Description:   "You uploaded a disallowed file type and the server accepted and stored it.",
		ExploitType:   "Missing server-side validation on file type",
		File:          file,
	}
}
