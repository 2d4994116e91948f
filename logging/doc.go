// Package logging provides structured logging for the reviser.
//
// It wraps a process-wide zap logger with a few convenience functions:
//
//	logging.Info("Revision started",
//	    zap.String("session_id", id),
//	    zap.String("tone", "soft"),
//	)
//
// Initialize logging once at startup:
//
//	if err := logging.Initialize("debug"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// When no level is given and REMINDER_LOG_LEVEL is unset, logging is silent.
// The terminal front end keeps it silent unless a log file is configured,
// since zap output would corrupt the screen.
package logging
