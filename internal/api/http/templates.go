package http

import (
	"bytes"
	"embed"
	"html/template"
	nethttp "net/http"

	authmw "github.com/mind-engage/globoquiz/internal/auth/middleware"
	"github.com/mind-engage/globoquiz/internal/player"
)

//go:embed static
var staticFiles embed.FS

// page is what every template receives. Data is page specific.
type page struct {
	Title    string
	Username string
	Data     any
}

var funcs = template.FuncMap{
	"flagURL": player.FlagURL,
	"seq":     func() []int { return []int{1, 2, 3, 4} },
}

var pages = map[string]*template.Template{}

func init() {
	for name, body := range pageBodies {
		t := template.Must(template.New("layout").Funcs(funcs).Parse(layoutHTML))
		pages[name] = template.Must(t.Parse(body))
	}
}

// render executes a page into a buffer first so template errors never leave a
// half-written response.
func render(w nethttp.ResponseWriter, r *nethttp.Request, status int, name, title string, data any) {
	t, ok := pages[name]
	if !ok {
		nethttp.Error(w, "unknown page "+name, nethttp.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	err := t.ExecuteTemplate(&buf, "layout", page{
		Title:    title,
		Username: authmw.UsernameFromContext(r.Context()),
		Data:     data,
	})
	if err != nil {
		nethttp.Error(w, err.Error(), nethttp.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

const layoutHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<link rel="stylesheet" href="/main.css">
</head>
<body>
<header>
<nav><ul>
<li><a href="/create">✏️ Create</a></li>
<li><a href="/play">🎲 Play</a></li>
<li><a href="/search">🔍 Search</a></li>
<li><a href="/flags">🎌 Flags</a></li>
</ul></nav>
</header>
<main>{{template "content" .}}</main>
<footer>
{{if .Username}}<form method="post" action="/logout"><span>{{.Username}}</span> <button type="submit">Log Out</button></form>
{{else}}<p><a href="/login" class="secondary">Log In</a><a href="/register" class="secondary">Register</a></p>{{end}}
</footer>
</body>
</html>`

var pageBodies = map[string]string{
	"index": `{{define "content"}}<div class="index">
<h1>🌎 Welcome to GloboQuiz!</h1>
<ul>
<li><a href="/create">✏️ Create</a></li>
<li><a href="/play">🎲 Play</a></li>
<li><a href="/search">🔍 Search</a></li>
<li><a href="/flags">🎌 Flags</a></li>
</ul>
</div>{{end}}`,

	"message": `{{define "content"}}<div class="result">{{with .Data}}<p>{{.Text}}</p>{{if .Link}}<a href="{{.Link}}">{{.LinkText}}</a>{{end}}{{end}}</div>{{end}}`,

	"quizzes": `{{define "content"}}<div class="quiz-index">
<h1>🎲 Play</h1>
<form method="get" action="/play">
<label>With <select name="operator">
{{range .Data.Operators}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}
</select></label>
<label><input type="number" name="questions" value="{{.Data.Questions}}"> questions</label>
<button type="submit" class="secondary">Filter</button>
</form>
{{if .Data.Filtered}}<p>Quizzes matching your filter:</p>{{end}}
<ul>
{{range .Data.Quizzes}}<li><a href="/play/{{.ID}}">{{.Title}} by {{.Author}}{{if not .Public}} [private]{{end}} ({{.QuestionCount}} questions)</a></li>
{{end}}</ul>
</div>{{end}}`,

	"search": `{{define "content"}}<div class="search">
<h1>🔍 Search</h1>
<form method="get" action="/search">
<input type="text" name="search" value="{{.Data.Term}}" required>
<button type="submit" class="secondary">Search</button>
</form>
{{if .Data.Searched}}<p>Search results for: {{.Data.Term}}</p>
<ul>
{{range .Data.Quizzes}}<li><a href="/play/{{.ID}}">{{.Title}} by {{.Author}}{{if not .Public}} (private){{end}}</a></li>
{{end}}</ul>{{end}}
</div>{{end}}`,

	"flags": `{{define "content"}}<div class="flags">
<h1>🎌 Flags</h1>
<p>If you just want to look at flags, this is the place for you!</p>
<section class="flag-gallery">
{{range .Data}}<div><h2 class="flag-title">{{.Title}}</h2><img src="{{flagURL .Name}}" alt="{{.Title}}"></div>
{{end}}</section>
</div>{{end}}`,

	"player": `{{define "content"}}<div class="quiz">
{{with .Data}}{{if .Message}}<p>{{.Message}}</p>
{{else if .View.Result}}<p class="result big">{{.View.Result}}</p>
{{else}}{{$state := .State}}{{$title := .View.Title}}{{range .View.Sections}}
<section class="question"{{if .Hidden}} hidden{{end}}>
<h1 class="quiz-title">Quiz: {{$title}}</h1>
{{if .ImagePath}}<figure class="flag"><img src="{{flagURL .ImagePath}}" alt=""></figure>{{end}}
<h2 class="prompt">{{.Prompt}}</h2>
<form method="post">
<input type="hidden" name="state" value="{{$state}}">
<input type="hidden" name="question" value="{{.Number}}">
<div class="options">
{{range .Options}}<button type="submit" name="option" value="{{.Number}}"{{if .Disabled}} class="{{if .Correct}}correct{{else}}incorrect{{end}}{{if .Guess}} guess{{end}}" disabled{{end}}>{{.Label}}</button>
{{end}}</div>
<button type="submit" name="action" value="next" class="next"{{if .Next.Disabled}} disabled{{end}}>{{.Next.Label}}</button>
</form>
</section>{{end}}{{end}}{{end}}
</div>{{end}}`,

	"create": `{{define "content"}}<div class="create">
<h1>✏️ Create</h1>
{{with .Data}}{{if .Error}}<p><strong>{{.Error}}</strong></p>{{end}}
<form method="post" action="/create">
<input type="text" required name="quiz-title" class="quiz-title" placeholder="Title of Quiz" value="{{.Form.Title}}">
<label class="quiz-public"><input type="checkbox" name="quiz-public" value="true"{{if .Form.Public}} checked{{end}}><span> This quiz should be public</span></label>
{{$flags := .Form.Flags}}{{range .Form.Blocks}}{{$b := .}}
<fieldset>
<input type="text" required name="{{.Name "prompt"}}" class="question-prompt" placeholder="{{.Label}}" value="{{.Prompt}}">
<label class="question-flag"><span>Flag: </span><select name="{{.Name "flag"}}">
{{range $flags}}<option{{if eq . $b.Flag}} selected{{end}}>{{.}}</option>{{end}}
</select></label>
<ul class="create-options">
{{range $i, $n := seq}}<li>
<input type="text" required name="{{$b.OptionName $n}}" placeholder="Option #{{$n}}" value="{{index $b.Options $i}}">
<label><input type="radio" name="{{$b.Name "answer"}}" value="{{$n}}"{{if eq $b.Answer $n}} checked{{end}}><span> Correct</span></label>
</li>{{end}}
</ul>
</fieldset>{{end}}
<button type="submit" name="action" value="add" class="secondary" id="add-question" formnovalidate>Add Question</button>
<button type="submit" name="action" value="save">Create Quiz</button>
</form>{{end}}
</div>{{end}}`,

	"login": `{{define "content"}}<div class="login">
<h1>Login</h1>
{{with .Data}}<p><strong>{{.}}</strong></p>{{end}}
<form method="post" action="/login">
<label><span>Username:</span><input type="text" name="username"></label>
<label><span>Password:</span><input type="password" name="password"></label>
<button type="submit">Log In</button>
</form>
</div>{{end}}`,

	"register": `{{define "content"}}<div class="register">
<h1>Register</h1>
{{with .Data}}<p><strong>{{.}}</strong></p>{{end}}
<form method="post" action="/register">
<label><span>Username:</span><input type="text" name="username"></label>
<label><span>Password:</span><input type="password" name="password"></label>
<label><span>Repeat password:</span><input type="password" name="password-again"></label>
<button type="submit">Register</button>
</form>
</div>{{end}}`,
}
