package server

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/Daskott/launchpad/utils"
	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
	"gorm.io/gorm"
)

// ---------------------------------------------------------------------------------//
// Handler Helper functions
// --------------------------------------------------------------------------------//

// render executes the named page into a buffer first, so a template error
// never reaches the client as a half written page
func (app *App) render(rw http.ResponseWriter, r *http.Request, name string, data PageData, statusCode int) {
	tmpl, ok := app.pages[name]
	if !ok {
		writeErrResponse(rw, fmt.Errorf("render: no page named %q", name))
		return
	}

	session, flashes := app.peekFlashes(r)
	data.Flashes = flashes
	if !app.skipCSRF {
		data.CSRFField = csrf.TemplateField(r)
	}

	buff := new(bytes.Buffer)
	err := tmpl.ExecuteTemplate(buff, "layout", data)
	if err != nil {
		writeErrResponse(rw, fmt.Errorf("render %s: %v", name, err))
		return
	}

	// flashes are only consumed once the page made it into the buffer
	if len(flashes) > 0 {
		if err := session.Save(r, rw); err != nil {
			logg.Errorf("render: clearing flashes: %v", err)
		}
	}

	rw.Header().Set("Content-Type", "text/html; charset=utf-8")
	rw.WriteHeader(statusCode)
	rw.Write(buff.Bytes())
}

func writeErrResponse(rw http.ResponseWriter, err error) {
	logg.Error(err)
	http.Error(rw, APPLICATION_ERR_MSG, http.StatusInternalServerError)
}

func (app *App) addFlash(rw http.ResponseWriter, r *http.Request, flash Flash) {
	session, err := app.sessions.Get(r, SESSION_NAME)
	if err != nil {
		logg.Warnf("addFlash: discarding unreadable session: %v", err)
	}

	session.AddFlash(flash.Message, flash.Category)
	if err := session.Save(r, rw); err != nil {
		logg.Errorf("addFlash: %v", err)
	}
}

// peekFlashes reads the flash messages stored in the session. They stay in
// the client's cookie until the returned session is saved.
func (app *App) peekFlashes(r *http.Request) (*sessions.Session, []Flash) {
	session, err := app.sessions.Get(r, SESSION_NAME)
	if err != nil {
		logg.Warnf("peekFlashes: discarding unreadable session: %v", err)
	}

	flashes := []Flash{}
	for _, category := range []string{SUCCESS_FLASH, WARNING_FLASH, DANGER_FLASH} {
		for _, msg := range session.Flashes(category) {
			flashes = append(flashes, Flash{Category: category, Message: fmt.Sprint(msg)})
		}
	}

	return session, flashes
}

// ---------------------------------------------------------------------------------//
// Server Helper functions
// --------------------------------------------------------------------------------//

func serve(server *http.Server) {
	logg.Infof("Launchpad server is listening on:%v", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Fatal(err)
	}
}

func cleanup(server *http.Server, db *gorm.DB) {
	// Shutdown server gracefully
	ctxShutDown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutDown); err != nil {
		logg.Fatalf("Launchpad server shutdown failed:%+s", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	logg.Infof("Launchpad server stopped properly")
}

// configDirectory retrieves the directory to store launchpad data
// Or logs an error message and then calls os.Exit if it's unable to.
func configDirectory(devMode bool) string {
	// Use 'launchpad' folder in home directory for prod
	configFolderName := "launchpad"
	rootDir, err := os.UserHomeDir()
	fatalOnError(err)

	// Use 'dev' folder in current directory for dev mode
	if devMode {
		configFolderName = "dev"
		rootDir, err = os.Getwd()
		fatalOnError(err)
	}

	configDir := filepath.Join(rootDir, configFolderName)

	err = utils.CreateDirIfNotExist(configDir)
	fatalOnError(err)

	return configDir
}

func fatalOnError(err error) {
	if err != nil {
		logg.Fatal(err)
	}
}
