package printing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute(t *testing.T) {
	tpl := `<h1>{{CLIENTE_NOME}}</h1>{{ TABELA_ITENS }}<p>{{DESCONHECIDO}}</p>`
	out := Substitute(tpl, Data{
		Values:    map[string]string{"CLIENTE_NOME": `Bar <Zé> & "Cia"`},
		Fragments: map[string]string{"TABELA_ITENS": "<table></table>"},
	})

	assert.Equal(t, `<h1>Bar &lt;Zé&gt; &amp; &#34;Cia&#34;</h1><table></table><p>{{DESCONHECIDO}}</p>`, out)
}
