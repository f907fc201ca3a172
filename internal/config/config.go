package config // package config loads application configuration from environment variables

import (
    "log"      // log is used to report configuration errors and halt execution
    "os"       // os provides access to environment variables
    "strconv"  // strconv converts strings to other types
    "strings"  // strings splits comma-separated values
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations.
// The struct is built once in main and passed into constructors; nothing in
// this package keeps global state.
type Config struct {
    Env            string   // application environment (e.g. "dev", "prod")
    Port           string   // HTTP port to listen on
    DBUser         string   // database username
    DBPass         string   // database password (optional)
    DBHost         string   // database host address
    DBPort         string   // database port number
    DBName         string   // database name
    JWTSecret      string   // secret used to sign JWTs
    AccessTTLMin   int      // access token time‑to‑live in minutes
    ResetTTLMin    int      // password-reset token time‑to‑live in minutes
    GoogleClientID string   // OAuth client id used as the expected audience for Google ID tokens
    SMTPHost       string   // SMTP server hostname
    SMTPPort       int      // SMTP server port
    SMTPUser       string   // SMTP username
    SMTPPassword   string   // SMTP password
    MailFrom       string   // From address for outbound mail
    FrontendURL    string   // base URL of the web frontend, used to build reset links
    CORSOrigins    []string // allowed CORS origins
    RabbitURL      string   // AMQP broker URL; empty disables the mail queue
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  Mail and broker
// settings are optional so the service can run locally without either.
func Load() Config {
    return Config{
        Env:            must("APP_ENV"),                 // environment (dev/test/prod)
        Port:           must("APP_PORT"),                // port to bind the HTTP server
        DBUser:         must("DB_USER"),                 // database user
        DBPass:         os.Getenv("DB_PASS"),            // database password (empty allowed)
        DBHost:         must("DB_HOST"),                 // database host
        DBPort:         must("DB_PORT"),                 // database port
        DBName:         must("DB_NAME"),                 // database name
        JWTSecret:      must("JWT_SECRET"),              // secret used for signing JWTs
        AccessTTLMin:   mustInt("ACCESS_TOKEN_TTL_MIN"), // TTL for access tokens in minutes
        ResetTTLMin:    intOr("RESET_TOKEN_TTL_MIN", 60),
        GoogleClientID: must("GOOGLE_CLIENT_ID"),        // audience for federated sign-in
        SMTPHost:       os.Getenv("SMTP_HOST"),
        SMTPPort:       intOr("SMTP_PORT", 587),
        SMTPUser:       os.Getenv("SMTP_USER"),
        SMTPPassword:   os.Getenv("SMTP_PASSWORD"),
        MailFrom:       strOr("MAIL_FROM", os.Getenv("SMTP_USER")),
        FrontendURL:    strOr("FRONTEND_URL", "http://localhost:5173"),
        CORSOrigins:    splitList(strOr("CORS_ORIGINS", "http://localhost:5173")),
        RabbitURL:      os.Getenv("RABBITMQ_URL"),
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
    s := must(key)
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}

// strOr returns the value of an optional variable or a default.
func strOr(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

// intOr returns the integer value of an optional variable or a default.
func intOr(key string, def int) int {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    n, err := strconv.Atoi(v)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, v)
    }
    return n
}

// splitList splits a comma-separated value into trimmed entries.
func splitList(s string) []string {
    parts := strings.Split(s, ",")
    out := make([]string, 0, len(parts))
    for _, p := range parts {
        if p = strings.TrimSpace(p); p != "" {
            out = append(out, p)
        }
    }
    return out
}
