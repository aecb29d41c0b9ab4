package i18n

var en = map[string]string{
	"registration.success":      "Registration successful! Logging you in...",
	"registration.failed":       "Registration failed. Please try again.",
	"registration.emailTaken":   "Email already registered.",
	"registration.nameTooShort": "Name must be at least 3 characters long.",
	"registration.nameRequired": "Name is required.",

	"shared.invalidEmail":            "Invalid email address.",
	"shared.emailRequired":           "Email is required.",
	"shared.passwordTooShort":        "Password must be at least 6 characters long.",
	"shared.passwordRequired":        "Password is required.",
	"shared.passwordsDoNotMatch":     "Passwords do not match.",
	"shared.confirmPasswordRequired": "Please confirm your password.",
	"shared.allInvalid":              "Please correct the highlighted fields.",

	"login.failed": "Invalid email or password.",

	"passwordReset.emailSent":    "If an account with that email exists, a password reset link has been sent.",
	"passwordReset.failed":       "Password reset failed. Please try again.",
	"passwordReset.tokenUsed":    "This reset link has already been used.",
	"passwordReset.tokenExpired": "This reset link has expired. Please request a new one.",
	"passwordReset.invalidToken": "Invalid or expired reset link.",
	"passwordReset.success":      "Your password has been reset. You can now log in.",

	"email.reset.subject": "Reset Your KetoTrack Password",
}

var de = map[string]string{
	"registration.success":      "Registrierung erfolgreich! Du wirst angemeldet...",
	"registration.failed":       "Registrierung fehlgeschlagen. Bitte versuche es erneut.",
	"registration.emailTaken":   "E-Mail ist bereits registriert.",
	"registration.nameTooShort": "Der Name muss mindestens 3 Zeichen lang sein.",
	"registration.nameRequired": "Name ist erforderlich.",

	"shared.invalidEmail":            "Ungültige E-Mail-Adresse.",
	"shared.emailRequired":           "E-Mail ist erforderlich.",
	"shared.passwordTooShort":        "Das Passwort muss mindestens 6 Zeichen lang sein.",
	"shared.passwordRequired":        "Passwort ist erforderlich.",
	"shared.passwordsDoNotMatch":     "Die Passwörter stimmen nicht überein.",
	"shared.confirmPasswordRequired": "Bitte bestätige dein Passwort.",
	"shared.allInvalid":              "Bitte korrigiere die markierten Felder.",

	"login.failed": "Ungültige E-Mail oder ungültiges Passwort.",

	"passwordReset.emailSent":    "Falls ein Konto mit dieser E-Mail existiert, wurde ein Link zum Zurücksetzen gesendet.",
	"passwordReset.failed":       "Zurücksetzen des Passworts fehlgeschlagen. Bitte versuche es erneut.",
	"passwordReset.tokenUsed":    "Dieser Link wurde bereits verwendet.",
	"passwordReset.tokenExpired": "Dieser Link ist abgelaufen. Bitte fordere einen neuen an.",
	"passwordReset.invalidToken": "Ungültiger oder abgelaufener Link.",
	"passwordReset.success":      "Dein Passwort wurde zurückgesetzt. Du kannst dich jetzt anmelden.",

	"email.reset.subject": "Setze dein KetoTrack-Passwort zurück",
}
