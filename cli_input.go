package main

import "github.com/alecthomas/kong"

// CLIInput stores all configuration flags and arguments that can be passed to the application
type CLIInput struct {
	Version kong.VersionFlag `short:"v" name:"version" help:"Get version number."`
	// DataDir is where the database and the search index are stored
	DataDir string `env:"DATA_DIR" short:"d" name:"data-dir" help:"Directory where to store the database and the search index. Defaults to ~/.corkboard" type:"path"`
	// FQDN stores the domain name of the server, used to build invitation links
	FQDN string `env:"FQDN" default:"localhost" name:"fqdn" help:"Domain name of the server, used to build invitation links"`
	// Port defines the port number in which the webserver listens for requests
	Port int `env:"PORT" short:"p" default:"3000" name:"port" help:"Port number in which the webserver listens for requests"`
	// SmtpServer points to the address of the send mail server
	SmtpServer string `env:"SMTP_SERVER" name:"smtp-server" help:"Address of the send mail server"`
	// SmtpPort defines the port in which the mail server listens for requests
	SmtpPort int `env:"SMTP_PORT" default:"587" name:"smtp-port" help:"Port in which the mail server listens for requests"`
	// SmtpUser holds the user to authenticate against the SMTP server
	SmtpUser string `env:"SMTP_USER" name:"smtp-user" help:"User to authenticate against the SMTP server"`
	// SmtpPassword holds the password to authenticate against the SMTP server
	SmtpPassword string `env:"SMTP_PASSWORD" name:"smtp-password" help:"Password to authenticate against the SMTP server"`
	// JwtSecret stores the string to use to sign JWTs
	JwtSecret string `env:"JWT_SECRET" short:"s" name:"jwt-secret" help:"String to use to sign JWTs. A random one is generated if empty, which invalidates sessions on every restart"`
	// MinPasswordLength is the minimum length acceptable for passwords
	MinPasswordLength int `env:"MIN_PASSWORD_LENGTH" default:"5" name:"min-password-length" help:"Minimum length acceptable for passwords"`
	// SessionTimeout specifies the maximum time a user session may last in hours
	SessionTimeout float64 `env:"SESSION_TIMEOUT" default:"24" name:"session-timeout" help:"Maximum time a user session may last in hours"`
	// BoardLifetime is the maximum number of hours a board accepts changes
	BoardLifetime int `env:"BOARD_LIFETIME" default:"24" name:"board-lifetime" help:"Maximum number of hours a board accepts changes"`
	// Lease is the number of seconds a board stays locked for other editors after a change
	Lease int `env:"LEASE" default:"5" name:"lease" help:"Seconds a board stays locked for other editors after a change"`
	// Verbose enables debug logs and the log of every request
	Verbose bool `env:"VERBOSE" default:"false" name:"verbose" help:"Log debug messages and every request"`
}
