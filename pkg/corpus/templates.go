package corpus

import "text/template"

// Class templates. Each renders a classView; the leading newline and the
// closing braces mirror the layout the analyzer fixtures were built from.

const orchestratorTemplate = `{{define "orchestrator"}}
using System;
using System.IO;
using System.Net.Http;
using System.Threading;
using System.Threading.Tasks;
using Microsoft.Azure.WebJobs;
using Microsoft.Azure.WebJobs.Extensions.DurableTask;
using Microsoft.Extensions.Logging;

namespace {{.Namespace}}
{
    public class {{.ClassName}}
    {{"{"}}{{range .Methods}}
    [FunctionName("{{$.ClassName}}_Method{{.Index}}")]
    public async Task<string> Method{{.Index}}Async(
        [OrchestrationTrigger] IDurableOrchestrationContext context)
    {
        // Performance test method with violations
{{- range .Locals}}
        var {{.Name}} = {{.Expr}};
{{- end}}

        // Call some activities
        await context.CallActivityAsync<string>("Activity{{.ActivitySlot}}", "data");
        await context.CallActivityAsync<int>("CalculateActivity", {{.Index}});

        return "completed";
    }
{{- end}}
    }
}
{{end}}`

const activityTemplate = `{{define "activity"}}
using System;
using System.Threading.Tasks;
using Microsoft.Azure.WebJobs;
using Microsoft.Azure.WebJobs.Extensions.DurableTask;
using Microsoft.Extensions.Logging;

namespace {{.Namespace}}
{
    public class {{.ClassName}}
    {{"{"}}{{range .Methods}}
    [FunctionName("{{$.ClassName}}_Activity{{.Index}}")]
    public async Task<string> Activity{{.Index}}Async([ActivityTrigger] string input, ILogger logger)
    {
        logger.LogInformation($"Processing {input} in activity {{.Index}}");

        // Simulate work
        await Task.Delay(Random.Shared.Next({{$.DelayMin}}, {{$.DelayMax}}));

        // Activities can use non-deterministic operations
        var timestamp = DateTime.Now;
        var guid = Guid.NewGuid();
        var env = Environment.GetEnvironmentVariable("PATH");

        return $"Activity{{.Index}} result: {input}-{timestamp}-{guid}";
    }
{{- end}}
    }
}
{{end}}`

const alternateOrchestratorTemplate = `{{define "alternate-orchestrator"}}
using System;
using System.IO;
using System.Net.Http;
using System.Threading;
using System.Threading.Tasks;
using Microsoft.DurableTask;

namespace {{.Namespace}}
{
    public class {{.ClassName}}
    {{"{"}}{{range .Methods}}
    public async Task<string> Method{{.Index}}Async(TaskOrchestrationContext context)
    {
        // DTF performance test method with violations
{{- range .Locals}}
        var {{.Name}} = {{.Expr}};
{{- end}}

        // Call some activities
        await context.CallActivityAsync<string>("DtfActivity{{.ActivitySlot}}", "data");
        await context.CallActivityAsync<int>("DtfCalculateActivity", {{.Index}});

        return "dtf completed";
    }
{{- end}}
    }
}
{{end}}`

var classTemplates = template.Must(
	template.Must(
		template.Must(template.New("classes").Parse(orchestratorTemplate)).
			Parse(activityTemplate)).
		Parse(alternateOrchestratorTemplate))

type classView struct {
	Namespace string
	ClassName string
	DelayMin  int
	DelayMax  int
	Methods   []methodView
}

type methodView struct {
	Index        int
	ActivitySlot int
	Locals       []localView
}

type localView struct {
	Name string
	Expr string
}
