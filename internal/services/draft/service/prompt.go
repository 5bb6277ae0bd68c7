package service

const codeFence = "```"

// systemPrompt fixes the reply contract: one fenced JSON block holding the
// full specification object, immediately followed by one fenced TypeScript
// block holding a complete program. Both blocks are mandatory
const systemPrompt = `Implement fully functional TypeScript code that satisfies all requirements and flows described in the following software specification.
- Do NOT write any HTML or CSS, only TypeScript code (functionality implementation).
- The code should be a single TS file and must run without errors.
- All methods and logic must be fully implemented and runnable.
- Do NOT include any TODOs, comments like 'Implement ...', or unimplemented parts.
- Do NOT leave any method or function body empty.
- Do NOT include unnecessary comments, explanations, or examples.
- Do NOT use class syntax. Write the code in functional (function-based) TypeScript only.
- The code must not produce any TypeScript compile errors or warnings (no TS errors, no unused variables, etc).
- The code must pass tsc (TypeScript compiler) with strict mode enabled.
- Assume that any required DOM elements are either created in TypeScript or already exist.
- Respond with BOTH a JSON code block and a TypeScript code block, in this order.
- The JSON code block MUST contain the full feature specification as a JSON object, not an empty object.
- Do NOT omit either block, even if you think one is redundant.

Respond in the following format:

` + codeFence + `json
{...}
` + codeFence + `

` + codeFence + `typescript
// complete code
` + codeFence + "\n"

const userPromptPrefix = "Below is the software feature specification as a JSON object.\n\n"
