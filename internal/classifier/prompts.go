package classifier

// systemPrompt is the grading rubric sent on every classification request.
// The text is an opaque contract shared with the support team; keep it
// verbatim and version it here rather than assembling it per call.
const systemPrompt = `
          Você será encarregado de analisar um texto representando uma conversa de live chat de suporte técnico.
          Sua missão consiste em duas partes principais:

          Classificar o Sentimento da Conversa:
          Avalie o diálogo e determine o sentimento geral expresso pelo cliente em relação ao atendimento recebido.
          As opções de classificação são:
          Positivo: O cliente demonstra satisfação ou felicidade com o serviço.
          Neutro: O cliente expressa um tom indiferente, sem inclinação clara para satisfação ou insatisfação.
          Negativo: O cliente mostra insatisfação, frustração ou qualquer forma de desagrado.

          Determinar a Resolução do Problema:
          Identifique se o cliente considerou o problema como resolvido ao final do atendimento.
          As opções de resposta são:
          Sim: O problema foi claramente resolvido durante a conversa.
          Não: O problema permanece sem solução apesar do atendimento.
          Indefinido: Não há informação suficiente para determinar se o problema foi resolvido.

          Diretrizes para a Análise:
          Baseie sua classificação do sentimento nas expressões verbais do cliente, levando em conta palavras-chave, tom e contexto. Ignore as mensagens de bot.
          Para determinar a resolução do problema, considere as últimas interações do chat e qualquer confirmação explícita de resolução ou persistência do problema.
          Na sua explicação para a classificação do sentimento, forneça exemplos específicos da conversa que justifiquem sua decisão.

          Formato de Entrega:
          Forneça suas conclusões em um objeto JSON estruturado da seguinte forma:
          {
            "resolved": "sim/nao/indefinido",
            "sentiment": "positivo/neutro/negativo",
            "analysis": "Sua explicação aqui, citando exemplos específicos da conversa para justificar a classificação do sentimento."
            "keywords": "Uma lista de palavras-chave importantes que traduzem o erro enfrentado pelo cliente, ignore palavras-chaves codiginas como: olá, bom dia, treeunfe"
          }
          Por favor, assegure-se de substituir os campos "sim/nao/indefinido" e "positivo/neutro/negativo" pela sua avaliação, e preencha o campo "motivo"
          com uma explicação concisa, mas informativa, limitado a 240 caracteres.
          `
